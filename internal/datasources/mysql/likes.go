package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// A like row references exactly one of post_id/comment_id; the table
// enforces that with a CHECK constraint plus per-target unique keys.

func (r *Repository) CreatePostLike(ctx context.Context, userID uuid.UUID, postID int64) error {
	return r.createLike(ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND post_id = ?)",
		"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, NOW())",
		userID, postID)
}

func (r *Repository) DeletePostLike(ctx context.Context, userID uuid.UUID, postID int64) error {
	return r.deleteLike(ctx,
		"DELETE FROM likes WHERE user_id = ? AND post_id = ?",
		userID, postID)
}

func (r *Repository) CreateCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error {
	return r.createLike(ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND comment_id = ?)",
		"INSERT INTO likes (user_id, comment_id, created_at) VALUES (?, ?, NOW())",
		userID, commentID)
}

func (r *Repository) DeleteCommentLike(ctx context.Context, userID uuid.UUID, commentID int64) error {
	return r.deleteLike(ctx,
		"DELETE FROM likes WHERE user_id = ? AND comment_id = ?",
		userID, commentID)
}

func (r *Repository) createLike(
	ctx context.Context, existsSQL, insertSQL string, userID uuid.UUID, targetID int64,
) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsSQL, userID.String(), targetID).Scan(&exists); err != nil {
		return fmt.Errorf("checking existing like: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	if _, err := r.db.ExecContext(ctx, insertSQL, userID.String(), targetID); err != nil {
		return fmt.Errorf("inserting like: %w", err)
	}
	return nil
}

func (r *Repository) deleteLike(
	ctx context.Context, deleteSQL string, userID uuid.UUID, targetID int64,
) error {
	res, err := r.db.ExecContext(ctx, deleteSQL, userID.String(), targetID)
	if err != nil {
		return fmt.Errorf("deleting like: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted like count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) FetchCommentMeta(
	ctx context.Context, commentID int64,
) (uuid.UUID, int64, error) {
	var (
		authorID string
		postID   int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, post_id FROM comments WHERE id = ?", commentID).Scan(&authorID, &postID)
	if isNoRows(err) {
		return uuid.Nil, 0, domain.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("fetching comment: %w", err)
	}

	parsed, err := uuid.Parse(authorID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("parsing comment author ID: %w", err)
	}
	return parsed, postID, nil
}
