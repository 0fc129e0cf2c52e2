package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/property-booking/internal/config"
	"github.com/BruksfildServices01/property-booking/internal/domain/user"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

const resetTokenPrefix = "password-reset:"

// ResetTokenStore keeps password reset tokens until they expire or are
// used once.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

var _ user.ResetTokenStore = (*ResetTokenStore)(nil)

func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, resetTokenPrefix+token, userID, ttl).Err()
}

func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, resetTokenPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", user.ErrResetTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
