package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// ResolvePostWeights expands a post engagement event into the concrete
// weight events: one for the post's author, one for its hashtag set.
// Weight updates are an eventually-consistent side channel, so a post
// that has vanished by processing time is skipped, not failed.
type ResolvePostWeights struct {
	Posts     datasources.PostResolver
	Publisher datasources.Publisher
}

func (c *ResolvePostWeights) Execute(ctx context.Context, event domain.PostEngagementEvent) error {
	logger := domain.LoggerFromContext(ctx)

	authorID, err := c.Posts.FetchPostAuthorID(ctx, event.PostID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.WarnContext(ctx, "post gone before weight resolution, skipping",
			"post_id", event.PostID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolving post author: %w", err)
	}

	if err := c.Publisher.Publish(ctx, domain.EventAuthorWeight, domain.AuthorWeightEvent{
		UserID:   event.UserID,
		AuthorID: authorID,
		Delta:    event.Delta,
	}); err != nil {
		return fmt.Errorf("publishing author weight event: %w", err)
	}

	hashtagIDs, err := c.Posts.ListPostHashtagIDs(ctx, event.PostID)
	if err != nil {
		return fmt.Errorf("resolving post hashtags: %w", err)
	}
	if len(hashtagIDs) == 0 {
		logger.DebugContext(ctx, "post has no hashtags, no hashtag weight event",
			"post_id", event.PostID)
		return nil
	}

	if err := c.Publisher.Publish(ctx, domain.EventHashtagWeights, domain.HashtagWeightsEvent{
		UserID:     event.UserID,
		HashtagIDs: hashtagIDs,
		Delta:      event.Delta,
	}); err != nil {
		return fmt.Errorf("publishing hashtag weights event: %w", err)
	}

	return nil
}
