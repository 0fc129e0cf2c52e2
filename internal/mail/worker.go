package mail

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultPollWait = 5 * time.Second

// Worker moves messages from a Source to a Sender until its context ends.
type Worker struct {
	source Source
	sender Sender
	wait   time.Duration
	logger *slog.Logger
}

func NewWorker(source Source, sender Sender, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		source: source,
		sender: sender,
		wait:   defaultPollWait,
		logger: logger.With(slog.String("component", "mail_worker")),
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("mail worker started")
	defer w.logger.Info("mail worker stopped")

	for {
		if ctx.Err() != nil {
			return
		}

		m, err := w.source.Dequeue(ctx, w.wait)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			w.logger.Warn("dequeue mail failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if m == nil {
			continue
		}

		if err := w.sender.Send(ctx, *m); err != nil {
			w.logger.Error("send mail failed",
				slog.String("to", m.To),
				slog.Any("error", err),
			)
		}
	}
}
