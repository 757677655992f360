package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records "user follows author".
type Subscription struct {
	UserID    uuid.UUID `json:"user_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriptionPage struct {
	Items      []Subscription `json:"items"`
	CountPages int            `json:"count_pages"`
}
