package command

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func TestResolvePostWeights_PublishesBothEvents(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	posts := &mocks.MockPostResolver{}
	publisher := &mocks.MockPublisher{}

	posts.On("FetchPostAuthorID", mock.Anything, int64(7)).Return(authorID, nil)
	posts.On("ListPostHashtagIDs", mock.Anything, int64(7)).Return([]int64{11, 12}, nil)

	publisher.On("Publish", mock.Anything, domain.EventAuthorWeight, domain.AuthorWeightEvent{
		UserID:   userID,
		AuthorID: authorID,
		Delta:    1,
	}).Return(nil)
	publisher.On("Publish", mock.Anything, domain.EventHashtagWeights, domain.HashtagWeightsEvent{
		UserID:     userID,
		HashtagIDs: []int64{11, 12},
		Delta:      1,
	}).Return(nil)

	cmd := &ResolvePostWeights{Posts: posts, Publisher: publisher}
	err := cmd.Execute(ctx, domain.PostEngagementEvent{UserID: userID, PostID: 7, Delta: 1})
	require.NoError(t, err)

	publisher.AssertExpectations(t)
}

func TestResolvePostWeights_SkipsHashtagEventWhenNone(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	posts := &mocks.MockPostResolver{}
	publisher := &mocks.MockPublisher{}

	posts.On("FetchPostAuthorID", mock.Anything, int64(7)).Return(authorID, nil)
	posts.On("ListPostHashtagIDs", mock.Anything, int64(7)).Return([]int64{}, nil)
	publisher.On("Publish", mock.Anything, domain.EventAuthorWeight, mock.Anything).Return(nil)

	cmd := &ResolvePostWeights{Posts: posts, Publisher: publisher}
	err := cmd.Execute(ctx, domain.PostEngagementEvent{UserID: userID, PostID: 7, Delta: -1})
	require.NoError(t, err)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, domain.EventHashtagWeights, mock.Anything)
}

func TestResolvePostWeights_MissingPostIsSkipped(t *testing.T) {
	ctx := testContext()

	posts := &mocks.MockPostResolver{}
	publisher := &mocks.MockPublisher{}

	posts.On("FetchPostAuthorID", mock.Anything, int64(7)).
		Return(uuid.Nil, domain.ErrNotFound)

	cmd := &ResolvePostWeights{Posts: posts, Publisher: publisher}
	err := cmd.Execute(ctx, domain.PostEngagementEvent{UserID: uuid.New(), PostID: 7, Delta: 1})
	require.NoError(t, err)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
