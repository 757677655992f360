package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// CreateRepost stores a post referencing another one. Reposting a
// bodiless repost references its original instead, so repost chains
// never grow past one hop of indirection.
type CreateRepost struct {
	Posts datasources.PostStore
}

func (c *CreateRepost) Execute(ctx context.Context, post domain.NewPost, targetID int64) (int64, error) {
	target, err := c.Posts.FetchRepostTarget(ctx, targetID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("fetching repost target: %w", err)
	}

	originalID := target.ResolveOriginal()
	post.OriginalPostID = &originalID

	id, err := c.Posts.CreatePost(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("creating repost: %w", err)
	}
	return id, nil
}
