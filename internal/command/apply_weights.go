package command

import (
	"context"
	"fmt"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// ApplyAuthorWeight folds a signed delta into one (user, author) weight
// record, creating it if absent. The store floors the result at zero.
type ApplyAuthorWeight struct {
	Weights datasources.WeightStore
}

func (c *ApplyAuthorWeight) Execute(ctx context.Context, event domain.AuthorWeightEvent) error {
	logger := domain.LoggerFromContext(ctx)

	if err := c.Weights.ApplyAuthorWeightDelta(ctx, event.UserID, event.AuthorID, event.Delta); err != nil {
		return fmt.Errorf("applying author weight delta: %w", err)
	}

	logger.DebugContext(ctx, "applied author weight delta",
		"user_id", event.UserID, "author_id", event.AuthorID, "delta", event.Delta)
	return nil
}

// ApplyHashtagWeights folds a signed delta into each (user, hashtag)
// weight record of an event.
type ApplyHashtagWeights struct {
	Weights datasources.WeightStore
}

func (c *ApplyHashtagWeights) Execute(ctx context.Context, event domain.HashtagWeightsEvent) error {
	logger := domain.LoggerFromContext(ctx)

	if err := c.Weights.ApplyHashtagWeightDeltas(ctx, event.UserID, event.HashtagIDs, event.Delta); err != nil {
		return fmt.Errorf("applying hashtag weight deltas: %w", err)
	}

	logger.DebugContext(ctx, "applied hashtag weight deltas",
		"user_id", event.UserID, "hashtags", len(event.HashtagIDs), "delta", event.Delta)
	return nil
}
