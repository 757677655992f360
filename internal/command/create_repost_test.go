package command

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func TestCreateRepost_ReferencesTarget(t *testing.T) {
	ctx := testContext()
	authorID := uuid.New()

	posts := &mocks.MockPostStore{}
	posts.On("FetchRepostTarget", mock.Anything, int64(5)).
		Return(domain.RepostTarget{ID: 5, HasBody: true}, nil)
	posts.On("CreatePost", mock.Anything, mock.MatchedBy(func(p domain.NewPost) bool {
		return p.OriginalPostID != nil && *p.OriginalPostID == 5
	})).Return(int64(10), nil)

	cmd := &CreateRepost{Posts: posts}
	id, err := cmd.Execute(ctx, domain.NewPost{AuthorID: authorID, Content: "take"}, 5)
	require.NoError(t, err)
	require.Equal(t, int64(10), id)
	posts.AssertExpectations(t)
}

func TestCreateRepost_BodilessRepostCollapses(t *testing.T) {
	ctx := testContext()
	originalID := int64(1)

	posts := &mocks.MockPostStore{}
	posts.On("FetchRepostTarget", mock.Anything, int64(5)).
		Return(domain.RepostTarget{ID: 5, OriginalPostID: &originalID, HasBody: false}, nil)
	posts.On("CreatePost", mock.Anything, mock.MatchedBy(func(p domain.NewPost) bool {
		return p.OriginalPostID != nil && *p.OriginalPostID == 1
	})).Return(int64(10), nil)

	cmd := &CreateRepost{Posts: posts}
	_, err := cmd.Execute(ctx, domain.NewPost{AuthorID: uuid.New()}, 5)
	require.NoError(t, err)
	posts.AssertExpectations(t)
}

func TestCreateRepost_TargetNotFound(t *testing.T) {
	ctx := testContext()

	posts := &mocks.MockPostStore{}
	posts.On("FetchRepostTarget", mock.Anything, int64(5)).
		Return(domain.RepostTarget{}, domain.ErrNotFound)

	cmd := &CreateRepost{Posts: posts}
	_, err := cmd.Execute(ctx, domain.NewPost{AuthorID: uuid.New()}, 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
	posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}
