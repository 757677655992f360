package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID             int64     `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	Title          string    `json:"title,omitempty"`
	Content        string    `json:"content,omitempty"`
	OriginalPostID *int64    `json:"original_post_id,omitempty"`
	Hashtags       []string  `json:"hashtags,omitempty"`
	LikesCount     int64     `json:"likes_count"`
	CommentsCount  int64     `json:"comments_count"`
	LikedByViewer  bool      `json:"is_liked_by_me"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PostFilters are the optional predicates of the post listing endpoint.
// Zero values mean "not set". All set predicates combine with AND; the
// hashtag set requires a post to carry every named hashtag.
type PostFilters struct {
	AuthorID       uuid.UUID
	DateFrom       time.Time
	DateTo         time.Time
	SearchTitle    string
	SearchContent  string
	Hashtags       []string
	SubscribedOnly bool
}

// Validate rejects inconsistent filters before any query runs.
func (f PostFilters) Validate() error {
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateFrom.After(f.DateTo) {
		return fmt.Errorf("date_from [%s] is after date_to [%s]",
			f.DateFrom.Format(time.DateOnly), f.DateTo.Format(time.DateOnly))
	}
	return nil
}

// PostListOptions control pagination. Page is 1-based.
type PostListOptions struct {
	Page  int
	Limit int
}

func (o PostListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// PostPage is the standard paginated envelope.
type PostPage struct {
	Items      []Post `json:"items"`
	CountPages int    `json:"count_pages"`
}

// PagesCount computes how many pages of size limit cover total rows.
func PagesCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewPost is the creation payload for a post or repost.
type NewPost struct {
	AuthorID       uuid.UUID
	Title          string
	Content        string
	OriginalPostID *int64
	Hashtags       []string
	AttachmentIDs  []int64
}

// HasOwnBody reports whether a post adds content of its own. A repost
// without a body collapses onto its original when reposted again.
func (p NewPost) HasOwnBody() bool {
	return p.Content != "" || len(p.AttachmentIDs) > 0
}

// RepostTarget is the slice of a post needed to decide what a new
// repost of it should reference.
type RepostTarget struct {
	ID             int64
	OriginalPostID *int64
	// HasBody is true when the post carries its own content or
	// attachments.
	HasBody bool
}

// ResolveOriginal picks the post a new repost should point at: the
// target itself, unless the target is a bodiless repost, in which case
// the target's own original.
func (t RepostTarget) ResolveOriginal() int64 {
	if t.OriginalPostID != nil && !t.HasBody {
		return *t.OriginalPostID
	}
	return t.ID
}
