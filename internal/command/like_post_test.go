package command

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func TestLikePost_MissingPost(t *testing.T) {
	ctx := testContext()

	posts := &mocks.MockPostStore{}
	posts.On("PostExists", mock.Anything, int64(7)).Return(false, nil)

	likes := &mocks.MockLikeStore{}

	cmd := &LikePost{
		Posts:     posts,
		Resolver:  &mocks.MockPostResolver{},
		Likes:     likes,
		Publisher: &mocks.MockPublisher{},
	}
	err := cmd.Execute(ctx, uuid.New(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
	likes.AssertNotCalled(t, "CreatePostLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikePost_Duplicate(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()

	posts := &mocks.MockPostStore{}
	posts.On("PostExists", mock.Anything, int64(7)).Return(true, nil)

	likes := &mocks.MockLikeStore{}
	likes.On("CreatePostLike", mock.Anything, userID, int64(7)).
		Return(domain.ErrAlreadyExists)

	cmd := &LikePost{
		Posts:     posts,
		Resolver:  &mocks.MockPostResolver{},
		Likes:     likes,
		Publisher: &mocks.MockPublisher{},
	}
	err := cmd.Execute(ctx, userID, 7)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLikePost_Success(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()

	posts := &mocks.MockPostStore{}
	posts.On("PostExists", mock.Anything, int64(7)).Return(true, nil)

	likes := &mocks.MockLikeStore{}
	likes.On("CreatePostLike", mock.Anything, userID, int64(7)).Return(nil)

	// Side effect publishing happens off the request path; the command
	// must succeed regardless of whether it has run yet.
	resolver := &mocks.MockPostResolver{}
	resolver.On("FetchPostAuthorID", mock.Anything, int64(7)).
		Return(uuid.New(), nil).Maybe()

	publisher := &mocks.MockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()

	cmd := &LikePost{Posts: posts, Resolver: resolver, Likes: likes, Publisher: publisher}
	err := cmd.Execute(ctx, userID, 7)
	require.NoError(t, err)
	likes.AssertExpectations(t)
}

func TestUnlikePost_NotLiked(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()

	posts := &mocks.MockPostStore{}
	posts.On("PostExists", mock.Anything, int64(7)).Return(true, nil)

	likes := &mocks.MockLikeStore{}
	likes.On("DeletePostLike", mock.Anything, userID, int64(7)).
		Return(domain.ErrNotFound)

	cmd := &UnlikePost{Posts: posts, Likes: likes, Publisher: &mocks.MockPublisher{}}
	err := cmd.Execute(ctx, userID, 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
