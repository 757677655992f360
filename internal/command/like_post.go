package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// LikePost records a like and queues the weight/notification events.
// Events are published after the write, off the request path; their
// failure never surfaces to the caller.
type LikePost struct {
	Posts     datasources.PostStore
	Resolver  datasources.PostResolver
	Likes     datasources.LikeStore
	Publisher datasources.Publisher
}

func (c *LikePost) Execute(ctx context.Context, userID uuid.UUID, postID int64) error {
	exists, err := c.Posts.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("checking post existence: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := c.Likes.CreatePostLike(ctx, userID, postID); err != nil {
		return fmt.Errorf("creating like: %w", err)
	}

	go c.publishSideEffects(context.WithoutCancel(ctx), userID, postID)
	return nil
}

func (c *LikePost) publishSideEffects(ctx context.Context, userID uuid.UUID, postID int64) {
	logger := domain.LoggerFromContext(ctx)

	if err := c.Publisher.Publish(ctx, domain.EventPostEngagement, domain.PostEngagementEvent{
		UserID: userID,
		PostID: postID,
		Delta:  domain.LikeWeightDelta,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish engagement event",
			"post_id", postID, "error", err)
	}

	authorID, err := c.Resolver.FetchPostAuthorID(ctx, postID)
	if err != nil {
		logger.WarnContext(ctx, "failed to resolve author for like notification",
			"post_id", postID, "error", err)
		return
	}

	if err := c.Publisher.Publish(ctx, domain.EventLikeCreated, domain.LikeCreatedEvent{
		TargetType: "post",
		UserID:     userID,
		AuthorID:   authorID,
		PostID:     postID,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish like notification",
			"post_id", postID, "error", err)
	}
}

// UnlikePost removes a like and queues the reverse weight deltas, so a
// like followed by an unlike nets to zero.
type UnlikePost struct {
	Posts     datasources.PostStore
	Likes     datasources.LikeStore
	Publisher datasources.Publisher
}

func (c *UnlikePost) Execute(ctx context.Context, userID uuid.UUID, postID int64) error {
	exists, err := c.Posts.PostExists(ctx, postID)
	if err != nil {
		return fmt.Errorf("checking post existence: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := c.Likes.DeletePostLike(ctx, userID, postID); err != nil {
		return fmt.Errorf("deleting like: %w", err)
	}

	go c.publishSideEffects(context.WithoutCancel(ctx), userID, postID)
	return nil
}

func (c *UnlikePost) publishSideEffects(ctx context.Context, userID uuid.UUID, postID int64) {
	logger := domain.LoggerFromContext(ctx)

	if err := c.Publisher.Publish(ctx, domain.EventPostEngagement, domain.PostEngagementEvent{
		UserID: userID,
		PostID: postID,
		Delta:  -domain.LikeWeightDelta,
	}); err != nil {
		logger.WarnContext(ctx, "failed to publish engagement event",
			"post_id", postID, "error", err)
	}
}
