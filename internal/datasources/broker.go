package datasources

import (
	"context"
	"io"
)

// Publisher sends a fire-and-forget event to the message broker.
// Delivery is at-least-once; callers treat failures as best-effort and
// must never surface them to the client.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// SessionResolver exchanges a session identifier for an active user via
// the external auth service.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (AuthUserResult, error)
}

// AuthUserResult mirrors the auth service response.
type AuthUserResult struct {
	UserID string `json:"id"`
	Active bool   `json:"is_active"`
}

// ObjectStorage stores attachment blobs.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, path string) error
	RemoveMany(ctx context.Context, paths []string) error
}
