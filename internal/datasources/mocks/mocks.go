// Package mocks holds hand-written testify mocks for the datasource
// interfaces.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type MockPostLister struct{ mock.Mock }

func (m *MockPostLister) ListLatestPostIDs(
	ctx context.Context, filters domain.PostFilters, options domain.PostListOptions,
) ([]int64, error) {
	args := m.Called(ctx, filters, options)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *MockPostLister) TotalMatchingPosts(ctx context.Context, filters domain.PostFilters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostFetcher struct{ mock.Mock }

func (m *MockPostFetcher) FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error) {
	args := m.Called(ctx, ids)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Error(1)
}

type MockPostStore struct{ mock.Mock }

func (m *MockPostStore) CreatePost(ctx context.Context, post domain.NewPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostStore) PostExists(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostStore) FetchRepostTarget(ctx context.Context, postID int64) (domain.RepostTarget, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.RepostTarget), args.Error(1)
}

type MockPostResolver struct{ mock.Mock }

func (m *MockPostResolver) FetchPostAuthorID(ctx context.Context, postID int64) (uuid.UUID, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPostResolver) ListPostHashtagIDs(ctx context.Context, postID int64) ([]int64, error) {
	args := m.Called(ctx, postID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type MockFeedLister struct{ mock.Mock }

func (m *MockFeedLister) HasPersonalizationSignal(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedLister) ListWeightedPostIDs(
	ctx context.Context, userID uuid.UUID, options domain.PostListOptions,
) ([]int64, error) {
	args := m.Called(ctx, userID, options)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *MockFeedLister) TotalWeightedPosts(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockWeightStore struct{ mock.Mock }

func (m *MockWeightStore) ApplyAuthorWeightDelta(
	ctx context.Context, userID, authorID uuid.UUID, delta int64,
) error {
	args := m.Called(ctx, userID, authorID, delta)
	return args.Error(0)
}

func (m *MockWeightStore) ApplyHashtagWeightDeltas(
	ctx context.Context, userID uuid.UUID, hashtagIDs []int64, delta int64,
) error {
	args := m.Called(ctx, userID, hashtagIDs, delta)
	return args.Error(0)
}

type MockLikeStore struct{ mock.Mock }

func (m *MockLikeStore) CreatePostLike(ctx context.Context, userID uuid.UUID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeStore) DeletePostLike(ctx context.Context, userID uuid.UUID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeStore) CreateCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *MockLikeStore) DeleteCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

type MockCommentResolver struct{ mock.Mock }

func (m *MockCommentResolver) FetchCommentMeta(
	ctx context.Context, commentID int64,
) (uuid.UUID, int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(uuid.UUID), args.Get(1).(int64), args.Error(2)
}

type MockSubscriptionStore struct{ mock.Mock }

func (m *MockSubscriptionStore) CreateSubscription(ctx context.Context, userID, authorID uuid.UUID) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionStore) DeleteSubscription(ctx context.Context, userID, authorID uuid.UUID) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionStore) SubscriptionExists(
	ctx context.Context, userID, authorID uuid.UUID,
) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionStore) ListSubscriptions(
	ctx context.Context, userID uuid.UUID, options domain.PostListOptions,
) ([]domain.Subscription, int64, error) {
	args := m.Called(ctx, userID, options)
	subs, _ := args.Get(0).([]domain.Subscription)
	return subs, args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionStore) AuthorHasPosts(ctx context.Context, authorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, authorID)
	return args.Bool(0), args.Error(1)
}

type MockAttachmentStore struct{ mock.Mock }

func (m *MockAttachmentStore) InsertAttachment(
	ctx context.Context, ownerID uuid.UUID, path string,
) (int64, error) {
	args := m.Called(ctx, ownerID, path)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttachmentStore) FetchAttachment(ctx context.Context, id int64) (domain.Attachment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Attachment), args.Error(1)
}

func (m *MockAttachmentStore) MarkAttachmentDeleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttachmentStore) ListDeletableAttachments(
	ctx context.Context, olderThan time.Time, limit int,
) ([]domain.Attachment, error) {
	args := m.Called(ctx, olderThan, limit)
	attachments, _ := args.Get(0).([]domain.Attachment)
	return attachments, args.Error(1)
}

func (m *MockAttachmentStore) DeleteAttachments(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

type MockSessionResolver struct{ mock.Mock }

func (m *MockSessionResolver) ResolveSession(
	ctx context.Context, sessionID string,
) (datasources.AuthUserResult, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(datasources.AuthUserResult), args.Error(1)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Upload(
	ctx context.Context, path string, r io.Reader, size int64, contentType string,
) error {
	args := m.Called(ctx, path, r, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockObjectStorage) RemoveMany(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}
