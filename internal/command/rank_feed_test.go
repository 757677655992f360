package command

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestRankFeed_AnonymousGetsChronological(t *testing.T) {
	ctx := testContext()
	options := domain.PostListOptions{Page: 1, Limit: 10}

	feed := &mocks.MockFeedLister{}
	lister := &mocks.MockPostLister{}
	fetcher := &mocks.MockPostFetcher{}

	lister.On("ListLatestPostIDs", mock.Anything, domain.PostFilters{}, options).
		Return([]int64{3, 2, 1}, nil)
	lister.On("TotalMatchingPosts", mock.Anything, domain.PostFilters{}).
		Return(int64(3), nil)
	fetcher.On("FetchPostsByID", mock.Anything, []int64{3, 2, 1}).
		Return([]domain.Post{{ID: 3}, {ID: 2}, {ID: 1}}, nil)

	cmd := &RankFeed{Feed: feed, Lister: lister, Fetcher: fetcher}
	page, err := cmd.Execute(ctx, uuid.Nil, options)
	require.NoError(t, err)

	assert.Equal(t, 1, page.CountPages)
	assert.Len(t, page.Items, 3)
	feed.AssertNotCalled(t, "HasPersonalizationSignal", mock.Anything, mock.Anything)
	lister.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

func TestRankFeed_GateClosedGetsChronological(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	options := domain.PostListOptions{Page: 1, Limit: 10}

	feed := &mocks.MockFeedLister{}
	lister := &mocks.MockPostLister{}
	fetcher := &mocks.MockPostFetcher{}

	feed.On("HasPersonalizationSignal", mock.Anything, userID).Return(false, nil)
	lister.On("ListLatestPostIDs", mock.Anything, domain.PostFilters{}, options).
		Return([]int64{2, 1}, nil)
	lister.On("TotalMatchingPosts", mock.Anything, domain.PostFilters{}).
		Return(int64(2), nil)
	fetcher.On("FetchPostsByID", mock.Anything, []int64{2, 1}).
		Return([]domain.Post{{ID: 2}, {ID: 1}}, nil)

	cmd := &RankFeed{Feed: feed, Lister: lister, Fetcher: fetcher}
	page, err := cmd.Execute(ctx, userID, options)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	feed.AssertNotCalled(t, "ListWeightedPostIDs", mock.Anything, mock.Anything, mock.Anything)
	feed.AssertExpectations(t)
}

func TestRankFeed_GateOpenGetsWeighted(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	options := domain.PostListOptions{Page: 1, Limit: 2}

	feed := &mocks.MockFeedLister{}
	lister := &mocks.MockPostLister{}
	fetcher := &mocks.MockPostFetcher{}

	feed.On("HasPersonalizationSignal", mock.Anything, userID).Return(true, nil)
	feed.On("ListWeightedPostIDs", mock.Anything, userID, options).
		Return([]int64{9, 4}, nil)
	feed.On("TotalWeightedPosts", mock.Anything, userID).Return(int64(5), nil)
	fetcher.On("FetchPostsByID", mock.Anything, []int64{9, 4}).
		Return([]domain.Post{{ID: 9}, {ID: 4}}, nil)

	cmd := &RankFeed{Feed: feed, Lister: lister, Fetcher: fetcher}
	page, err := cmd.Execute(ctx, userID, options)
	require.NoError(t, err)

	assert.Equal(t, 3, page.CountPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(9), page.Items[0].ID)
	lister.AssertNotCalled(t, "ListLatestPostIDs", mock.Anything, mock.Anything, mock.Anything)
	feed.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

func TestRankFeed_GateCheckError(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()

	feed := &mocks.MockFeedLister{}
	feed.On("HasPersonalizationSignal", mock.Anything, userID).
		Return(false, assert.AnError)

	cmd := &RankFeed{Feed: feed, Lister: &mocks.MockPostLister{}, Fetcher: &mocks.MockPostFetcher{}}
	_, err := cmd.Execute(ctx, userID, domain.PostListOptions{Page: 1, Limit: 10})
	require.Error(t, err)
}
