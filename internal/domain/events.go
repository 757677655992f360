package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Broker event types. "post.engagement" events carry only a post ID and
// are resolved to author/hashtag deltas by the worker; the resolved
// events then feed the weight store. "like.created" leaves the service
// for the notification pipeline.
const (
	EventPostEngagement = "post.engagement"
	EventAuthorWeight   = "weights.author"
	EventHashtagWeights = "weights.hashtags"
	EventLikeCreated    = "like.created"
)

// Envelope is the wire format of every broker message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// PostEngagementEvent asks the worker to apply Delta to the author
// weight and to each hashtag weight of the given post.
type PostEngagementEvent struct {
	UserID uuid.UUID `json:"user_id"`
	PostID int64     `json:"post_id"`
	Delta  int64     `json:"delta"`
}

type AuthorWeightEvent struct {
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Delta    int64     `json:"delta"`
}

type HashtagWeightsEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	HashtagIDs []int64   `json:"hashtag_ids"`
	Delta      int64     `json:"delta"`
}

// LikeCreatedEvent notifies the author that their post or comment was
// liked. TargetType is "post" or "comment".
type LikeCreatedEvent struct {
	TargetType string    `json:"type_object"`
	UserID     uuid.UUID `json:"user_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	PostID     int64     `json:"post_id"`
	CommentID  *int64    `json:"comment_id,omitempty"`
}
