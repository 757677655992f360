package app

import (
	"context"
	"time"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// Janitor runs the attachment cleanup pass on a fixed interval.
type Janitor struct {
	CleanupCmd *command.CleanupAttachments
	Interval   time.Duration
}

func (j *Janitor) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := j.CleanupCmd.Execute(ctx); err != nil {
				logger.ErrorContext(ctx, "attachment cleanup pass failed", "error", err)
			}
		}
	}
}
