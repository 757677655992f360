package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func (r *Repository) CreateSubscription(ctx context.Context, userID, authorID uuid.UUID) error {
	exists, err := r.SubscriptionExists(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO subscriptions (user_id, author_id, created_at) VALUES (?, ?, NOW())",
		userID.String(), authorID.String())
	if err != nil {
		return fmt.Errorf("inserting subscription: %w", err)
	}
	return nil
}

func (r *Repository) DeleteSubscription(ctx context.Context, userID, authorID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM subscriptions WHERE user_id = ? AND author_id = ?",
		userID.String(), authorID.String())
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted subscription count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) SubscriptionExists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM subscriptions WHERE user_id = ? AND author_id = ?)",
		userID.String(), authorID.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking subscription existence: %w", err)
	}
	return exists, nil
}

func (r *Repository) ListSubscriptions(
	ctx context.Context, userID uuid.UUID, options domain.PostListOptions,
) ([]domain.Subscription, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM subscriptions WHERE user_id = ?", userID.String()).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting subscriptions: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, author_id, created_at FROM subscriptions
WHERE user_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		userID.String(), options.Limit, options.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("running subscriptions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	subscriptions := []domain.Subscription{}
	for rows.Next() {
		var (
			sub              domain.Subscription
			userStr, authStr string
		)
		if err := rows.Scan(&userStr, &authStr, &sub.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning subscriptions: %w", err)
		}
		if sub.UserID, err = uuid.Parse(userStr); err != nil {
			return nil, 0, fmt.Errorf("parsing subscription user ID: %w", err)
		}
		if sub.AuthorID, err = uuid.Parse(authStr); err != nil {
			return nil, 0, fmt.Errorf("parsing subscription author ID: %w", err)
		}
		subscriptions = append(subscriptions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	return subscriptions, total, nil
}

// AuthorHasPosts stands in for author existence: an author is known to
// this service only through their posts.
func (r *Repository) AuthorHasPosts(ctx context.Context, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE user_id = ?)", authorID.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking author posts: %w", err)
	}
	return exists, nil
}
