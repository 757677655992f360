package datasources

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type DatasetRepository interface {
	PostLister
	PostFetcher
	PostStore
	PostResolver
	FeedLister
	WeightStore
	LikeStore
	CommentResolver
	SubscriptionStore
	AttachmentStore
}

// PostLister lists post IDs matching the composed filters, newest first.
// The viewer, when present in the context, scopes the subscriptions-only
// filter.
type PostLister interface {
	ListLatestPostIDs(ctx context.Context, filters domain.PostFilters, options domain.PostListOptions) ([]int64, error)
	TotalMatchingPosts(ctx context.Context, filters domain.PostFilters) (int64, error)
}

// PostFetcher loads full posts by ID, preserving input order, with the
// liked-by-viewer flag resolved against the context user.
type PostFetcher interface {
	FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error)
}

type PostStore interface {
	CreatePost(ctx context.Context, post domain.NewPost) (int64, error)
	PostExists(ctx context.Context, postID int64) (bool, error)
	// FetchRepostTarget loads what a new repost of postID should point
	// at: the post itself plus enough of its own repost linkage to
	// collapse empty reposts.
	FetchRepostTarget(ctx context.Context, postID int64) (domain.RepostTarget, error)
}

type PostResolver interface {
	FetchPostAuthorID(ctx context.Context, postID int64) (uuid.UUID, error)
	ListPostHashtagIDs(ctx context.Context, postID int64) ([]int64, error)
}

// FeedLister serves the personalized feed queries.
type FeedLister interface {
	// HasPersonalizationSignal reports whether the user has at least one
	// hashtag weight clearing domain.MinHashtagWeightGate.
	HasPersonalizationSignal(ctx context.Context, userID uuid.UUID) (bool, error)
	ListWeightedPostIDs(ctx context.Context, userID uuid.UUID, options domain.PostListOptions) ([]int64, error)
	TotalWeightedPosts(ctx context.Context, userID uuid.UUID) (int64, error)
}

// WeightStore applies signed deltas to affinity weights, creating
// records on first use and flooring results at zero.
type WeightStore interface {
	ApplyAuthorWeightDelta(ctx context.Context, userID, authorID uuid.UUID, delta int64) error
	ApplyHashtagWeightDeltas(ctx context.Context, userID uuid.UUID, hashtagIDs []int64, delta int64) error
}

type LikeStore interface {
	CreatePostLike(ctx context.Context, userID uuid.UUID, postID int64) error
	DeletePostLike(ctx context.Context, userID uuid.UUID, postID int64) error
	CreateCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error
	DeleteCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error
}

type CommentResolver interface {
	// FetchCommentMeta returns the comment author and owning post.
	FetchCommentMeta(ctx context.Context, commentID int64) (authorID uuid.UUID, postID int64, err error)
}

type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, userID, authorID uuid.UUID) error
	DeleteSubscription(ctx context.Context, userID, authorID uuid.UUID) error
	SubscriptionExists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	ListSubscriptions(ctx context.Context, userID uuid.UUID, options domain.PostListOptions) ([]domain.Subscription, int64, error)
	AuthorHasPosts(ctx context.Context, authorID uuid.UUID) (bool, error)
}

type AttachmentStore interface {
	InsertAttachment(ctx context.Context, ownerID uuid.UUID, path string) (int64, error)
	FetchAttachment(ctx context.Context, id int64) (domain.Attachment, error)
	MarkAttachmentDeleted(ctx context.Context, id int64) error
	// ListDeletableAttachments returns soft-deleted attachments plus
	// unattached ones older than the cutoff, oldest first.
	ListDeletableAttachments(ctx context.Context, olderThan time.Time, limit int) ([]domain.Attachment, error)
	DeleteAttachments(ctx context.Context, ids []int64) error
}
