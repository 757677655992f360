package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// Subscribe records "user follows author" and queues the author weight
// bump. The author is known here, so the weight event skips the
// resolution hop that like events need.
type Subscribe struct {
	Subscriptions datasources.SubscriptionStore
	Publisher     datasources.Publisher
}

func (c *Subscribe) Execute(ctx context.Context, userID, authorID uuid.UUID) error {
	known, err := c.Subscriptions.AuthorHasPosts(ctx, authorID)
	if err != nil {
		return fmt.Errorf("checking author: %w", err)
	}
	if !known {
		return domain.ErrNotFound
	}

	if err := c.Subscriptions.CreateSubscription(ctx, userID, authorID); err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}

	go c.publishWeight(context.WithoutCancel(ctx), userID, authorID, domain.SubscribeWeightDelta)
	return nil
}

func (c *Subscribe) publishWeight(ctx context.Context, userID, authorID uuid.UUID, delta int64) {
	if err := c.Publisher.Publish(ctx, domain.EventAuthorWeight, domain.AuthorWeightEvent{
		UserID:   userID,
		AuthorID: authorID,
		Delta:    delta,
	}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to publish author weight event",
			"author_id", authorID, "error", err)
	}
}

// Unsubscribe removes a subscription and queues the reverse weight
// delta; the store floors the resulting weight at zero.
type Unsubscribe struct {
	Subscriptions datasources.SubscriptionStore
	Publisher     datasources.Publisher
}

func (c *Unsubscribe) Execute(ctx context.Context, userID, authorID uuid.UUID) error {
	if err := c.Subscriptions.DeleteSubscription(ctx, userID, authorID); err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	go c.publishWeight(context.WithoutCancel(ctx), userID, authorID, -domain.SubscribeWeightDelta)
	return nil
}

func (c *Unsubscribe) publishWeight(ctx context.Context, userID, authorID uuid.UUID, delta int64) {
	if err := c.Publisher.Publish(ctx, domain.EventAuthorWeight, domain.AuthorWeightEvent{
		UserID:   userID,
		AuthorID: authorID,
		Delta:    delta,
	}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to publish author weight event",
			"author_id", authorID, "error", err)
	}
}
