package command

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func TestSubscribe_UnknownAuthor(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	subscriptions := &mocks.MockSubscriptionStore{}
	subscriptions.On("AuthorHasPosts", mock.Anything, authorID).Return(false, nil)

	cmd := &Subscribe{Subscriptions: subscriptions, Publisher: &mocks.MockPublisher{}}
	err := cmd.Execute(ctx, userID, authorID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	subscriptions.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_Duplicate(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	subscriptions := &mocks.MockSubscriptionStore{}
	subscriptions.On("AuthorHasPosts", mock.Anything, authorID).Return(true, nil)
	subscriptions.On("CreateSubscription", mock.Anything, userID, authorID).
		Return(domain.ErrAlreadyExists)

	cmd := &Subscribe{Subscriptions: subscriptions, Publisher: &mocks.MockPublisher{}}
	err := cmd.Execute(ctx, userID, authorID)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestSubscribe_Success(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	subscriptions := &mocks.MockSubscriptionStore{}
	subscriptions.On("AuthorHasPosts", mock.Anything, authorID).Return(true, nil)
	subscriptions.On("CreateSubscription", mock.Anything, userID, authorID).Return(nil)

	publisher := &mocks.MockPublisher{}
	publisher.On("Publish", mock.Anything, domain.EventAuthorWeight, mock.Anything).
		Return(nil).Maybe()

	cmd := &Subscribe{Subscriptions: subscriptions, Publisher: publisher}
	err := cmd.Execute(ctx, userID, authorID)
	require.NoError(t, err)
	subscriptions.AssertExpectations(t)
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	ctx := testContext()
	userID := uuid.New()
	authorID := uuid.New()

	subscriptions := &mocks.MockSubscriptionStore{}
	subscriptions.On("DeleteSubscription", mock.Anything, userID, authorID).
		Return(domain.ErrNotFound)

	cmd := &Unsubscribe{Subscriptions: subscriptions, Publisher: &mocks.MockPublisher{}}
	err := cmd.Execute(ctx, userID, authorID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
