package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a stored media object. Deletion is soft: the janitor
// removes the object and the row later.
type Attachment struct {
	ID        int64     `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	PostID    *int64    `json:"post_id,omitempty"`
	Path      string    `json:"path"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
