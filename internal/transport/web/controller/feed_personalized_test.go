package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func TestFeedPersonalized_InvalidPagination(t *testing.T) {
	controller := FeedPersonalized{Ranker: &command.RankFeed{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/feed/personalized?page=-1", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedPersonalized_AnonymousChronological(t *testing.T) {
	lister := &mocks.MockPostLister{}
	fetcher := &mocks.MockPostFetcher{}
	lister.On("ListLatestPostIDs", mock.Anything, domain.PostFilters{}, mock.Anything).
		Return([]int64{2, 1}, nil)
	lister.On("TotalMatchingPosts", mock.Anything, domain.PostFilters{}).
		Return(int64(2), nil)
	fetcher.On("FetchPostsByID", mock.Anything, []int64{2, 1}).
		Return([]domain.Post{{ID: 2}, {ID: 1}}, nil)

	controller := FeedPersonalized{Ranker: &command.RankFeed{
		Feed:    &mocks.MockFeedLister{},
		Lister:  lister,
		Fetcher: fetcher,
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/feed/personalized", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.PostPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 1, page.CountPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].ID)
}

func TestFeedPersonalized_WeightedForGatedUser(t *testing.T) {
	userID := uuid.New()

	feed := &mocks.MockFeedLister{}
	fetcher := &mocks.MockPostFetcher{}
	feed.On("HasPersonalizationSignal", mock.Anything, userID).Return(true, nil)
	feed.On("ListWeightedPostIDs", mock.Anything, userID, mock.Anything).
		Return([]int64{9}, nil)
	feed.On("TotalWeightedPosts", mock.Anything, userID).Return(int64(1), nil)
	fetcher.On("FetchPostsByID", mock.Anything, []int64{9}).
		Return([]domain.Post{{ID: 9}}, nil)

	controller := FeedPersonalized{Ranker: &command.RankFeed{
		Feed:    feed,
		Lister:  &mocks.MockPostLister{},
		Fetcher: fetcher,
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/feed/personalized", nil)
	req = testContextWithUserID(userID)(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.PostPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(9), page.Items[0].ID)
}
