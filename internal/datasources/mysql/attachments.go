package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func (r *Repository) InsertAttachment(ctx context.Context, ownerID uuid.UUID, path string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO attachments (owner_id, path, is_deleted, created_at) VALUES (?, ?, FALSE, NOW())",
		ownerID.String(), path)
	if err != nil {
		return 0, fmt.Errorf("inserting attachment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted attachment ID: %w", err)
	}
	return id, nil
}

func (r *Repository) FetchAttachment(ctx context.Context, id int64) (domain.Attachment, error) {
	var (
		att      domain.Attachment
		ownerStr string
		postID   *int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, post_id, path, is_deleted, created_at FROM attachments WHERE id = ?",
		id).Scan(&att.ID, &ownerStr, &postID, &att.Path, &att.IsDeleted, &att.CreatedAt)
	if isNoRows(err) {
		return domain.Attachment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("fetching attachment: %w", err)
	}

	att.PostID = postID
	if att.OwnerID, err = uuid.Parse(ownerStr); err != nil {
		return domain.Attachment{}, fmt.Errorf("parsing attachment owner ID: %w", err)
	}
	return att, nil
}

func (r *Repository) MarkAttachmentDeleted(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE attachments SET is_deleted = TRUE WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking attachment deleted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading marked attachment count: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListDeletableAttachments(
	ctx context.Context, olderThan time.Time, limit int,
) ([]domain.Attachment, error) {
	sb := sqlbuilder.Select("id", "owner_id", "post_id", "path", "is_deleted", "created_at")
	sb.From("attachments")
	sb.Where(sb.Or(
		"is_deleted = TRUE",
		sb.And(sb.LessThan("created_at", olderThan), "post_id IS NULL"),
	))
	sb.OrderBy("id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running deletable attachments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	attachments := []domain.Attachment{}
	for rows.Next() {
		var (
			att      domain.Attachment
			ownerStr string
			postID   *int64
		)
		if err := rows.Scan(&att.ID, &ownerStr, &postID, &att.Path, &att.IsDeleted, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning attachments: %w", err)
		}
		att.PostID = postID
		if att.OwnerID, err = uuid.Parse(ownerStr); err != nil {
			return nil, fmt.Errorf("parsing attachment owner ID: %w", err)
		}
		attachments = append(attachments, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return attachments, nil
}

func (r *Repository) DeleteAttachments(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	idArgs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}

	db := sqlbuilder.DeleteFrom("attachments")
	db.Where(db.In("id", idArgs...))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting attachments: %w", err)
	}
	return nil
}
