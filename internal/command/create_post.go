package command

import (
	"context"
	"fmt"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// CreatePost stores a new post with its hashtags and claims any
// pre-uploaded attachments for it.
type CreatePost struct {
	Posts datasources.PostStore
}

func (c *CreatePost) Execute(ctx context.Context, post domain.NewPost) (int64, error) {
	if !post.HasOwnBody() && post.Title == "" {
		return 0, fmt.Errorf("%w: post needs a title, content or attachments", domain.ErrInvalidInput)
	}

	id, err := c.Posts.CreatePost(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("creating post: %w", err)
	}
	return id, nil
}
