package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a message. Implementations may block.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Source hands out queued messages. Dequeue returns (nil, nil) when nothing
// arrived within wait.
type Source interface {
	Dequeue(ctx context.Context, wait time.Duration) (*Message, error)
}

// RedisQueue is a FIFO list of JSON encoded messages.
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Enqueue(ctx context.Context, m Message) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("enqueue mail: %w", err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context, wait time.Duration) (*Message, error) {
	res, err := q.client.BRPop(ctx, wait, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// res is [key, value]
	var m Message
	if err := json.Unmarshal([]byte(res[1]), &m); err != nil {
		return nil, fmt.Errorf("decode mail: %w", err)
	}
	return &m, nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(_ context.Context, m Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("mail sent",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
	)
	return nil
}
