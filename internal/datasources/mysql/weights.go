package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Weight upserts clamp at zero inside the statement itself, so two
// concurrent deltas for the same key resolve through the storage
// engine's per-row update atomicity instead of a read-modify-write race.
const (
	upsertAuthorWeightSQL = `INSERT INTO author_weight (user_id, author_id, weight)
VALUES (?, ?, GREATEST(0, ?))
ON DUPLICATE KEY UPDATE weight = GREATEST(0, weight + ?)`

	upsertHashtagWeightSQL = `INSERT INTO hashtag_weight (user_id, hashtag_id, weight)
VALUES (?, ?, GREATEST(0, ?))
ON DUPLICATE KEY UPDATE weight = GREATEST(0, weight + ?)`
)

func (r *Repository) ApplyAuthorWeightDelta(
	ctx context.Context, userID, authorID uuid.UUID, delta int64,
) error {
	_, err := r.db.ExecContext(ctx, upsertAuthorWeightSQL,
		userID.String(), authorID.String(), delta, delta)
	if err != nil {
		return fmt.Errorf("upserting author weight: %w", err)
	}
	return nil
}

func (r *Repository) ApplyHashtagWeightDeltas(
	ctx context.Context, userID uuid.UUID, hashtagIDs []int64, delta int64,
) error {
	if len(hashtagIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, hashtagID := range hashtagIDs {
		if _, err := tx.ExecContext(ctx, upsertHashtagWeightSQL,
			userID.String(), hashtagID, delta, delta); err != nil {
			return fmt.Errorf("upserting hashtag weight [%d]: %w", hashtagID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
