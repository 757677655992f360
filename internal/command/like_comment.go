package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// LikeComment records a comment like. Comment likes only notify the
// comment author; they do not move affinity weights.
type LikeComment struct {
	Comments  datasources.CommentResolver
	Likes     datasources.LikeStore
	Publisher datasources.Publisher
}

func (c *LikeComment) Execute(ctx context.Context, userID uuid.UUID, commentID int64) error {
	authorID, postID, err := c.Comments.FetchCommentMeta(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("resolving comment: %w", err)
	}

	if err := c.Likes.CreateCommentLike(ctx, userID, commentID); err != nil {
		return fmt.Errorf("creating comment like: %w", err)
	}

	go c.publishNotification(context.WithoutCancel(ctx), userID, authorID, postID, commentID)
	return nil
}

func (c *LikeComment) publishNotification(
	ctx context.Context, userID, authorID uuid.UUID, postID, commentID int64,
) {
	if err := c.Publisher.Publish(ctx, domain.EventLikeCreated, domain.LikeCreatedEvent{
		TargetType: "comment",
		UserID:     userID,
		AuthorID:   authorID,
		PostID:     postID,
		CommentID:  &commentID,
	}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to publish like notification",
			"comment_id", commentID, "error", err)
	}
}

// UnlikeComment removes a comment like.
type UnlikeComment struct {
	Comments datasources.CommentResolver
	Likes    datasources.LikeStore
}

func (c *UnlikeComment) Execute(ctx context.Context, userID uuid.UUID, commentID int64) error {
	if _, _, err := c.Comments.FetchCommentMeta(ctx, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("resolving comment: %w", err)
	}

	if err := c.Likes.DeleteCommentLike(ctx, userID, commentID); err != nil {
		return fmt.Errorf("deleting comment like: %w", err)
	}
	return nil
}
