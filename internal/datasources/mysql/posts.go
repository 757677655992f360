package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func (r *Repository) CreatePost(ctx context.Context, post domain.NewPost) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO posts (user_id, title, content, original_post_id, created_at, updated_at)
VALUES (?, ?, ?, ?, NOW(), NOW())`,
		post.AuthorID.String(), nullString(post.Title), nullString(post.Content), post.OriginalPostID)
	if err != nil {
		return 0, fmt.Errorf("inserting post: %w", err)
	}

	postID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted post ID: %w", err)
	}

	if len(post.Hashtags) > 0 {
		if err := linkHashtags(ctx, tx, postID, post.Hashtags); err != nil {
			return 0, err
		}
	}

	if len(post.AttachmentIDs) > 0 {
		if err := claimAttachments(ctx, tx, postID, post.AuthorID, post.AttachmentIDs); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return postID, nil
}

// linkHashtags resolves hashtag names to rows, creating missing ones,
// and attaches them to the post.
func linkHashtags(ctx context.Context, tx *sql.Tx, postID int64, names []string) error {
	for _, raw := range names {
		name := normalizeHashtag(raw)
		if name == "" {
			continue
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO hashtags (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("creating hashtag [%s]: %w", name, err)
		}

		var hashtagID int64
		if err := tx.QueryRowContext(ctx,
			"SELECT id FROM hashtags WHERE name = ?", name).Scan(&hashtagID); err != nil {
			return fmt.Errorf("resolving hashtag [%s]: %w", name, err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO post_hashtags (post_id, hashtag_id) VALUES (?, ?)",
			postID, hashtagID); err != nil {
			return fmt.Errorf("linking hashtag [%s]: %w", name, err)
		}
	}
	return nil
}

// claimAttachments binds previously uploaded, still unattached
// attachments owned by the author to the new post.
func claimAttachments(
	ctx context.Context, tx *sql.Tx, postID int64, ownerID uuid.UUID, attachmentIDs []int64,
) error {
	ids := make([]interface{}, 0, len(attachmentIDs))
	for _, id := range attachmentIDs {
		ids = append(ids, id)
	}

	ub := sqlbuilder.Update("attachments")
	ub.Set(ub.Assign("post_id", postID))
	ub.Where(
		ub.In("id", ids...),
		ub.Equal("owner_id", ownerID.String()),
		"post_id IS NULL",
	)

	query, args := ub.Build()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("claiming attachments: %w", err)
	}

	claimed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading claimed attachment count: %w", err)
	}
	if claimed != int64(len(attachmentIDs)) {
		return fmt.Errorf("claiming attachments: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) PostExists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)", postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking post existence: %w", err)
	}
	return exists, nil
}

func (r *Repository) FetchRepostTarget(ctx context.Context, postID int64) (domain.RepostTarget, error) {
	var (
		target     domain.RepostTarget
		originalID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.original_post_id,
(COALESCE(p.content, '') != '' OR EXISTS(SELECT 1 FROM attachments a WHERE a.post_id = p.id)) AS has_body
FROM posts p WHERE p.id = ?`,
		postID).Scan(&target.ID, &originalID, &target.HasBody)
	if isNoRows(err) {
		return domain.RepostTarget{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.RepostTarget{}, fmt.Errorf("fetching repost target: %w", err)
	}
	if originalID.Valid {
		target.OriginalPostID = &originalID.Int64
	}
	return target, nil
}

func (r *Repository) FetchPostAuthorID(ctx context.Context, postID int64) (uuid.UUID, error) {
	var authorID string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id FROM posts WHERE id = ?", postID).Scan(&authorID)
	if isNoRows(err) {
		return uuid.Nil, domain.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("fetching post author: %w", err)
	}

	parsed, err := uuid.Parse(authorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing post author ID: %w", err)
	}
	return parsed, nil
}

func (r *Repository) ListPostHashtagIDs(ctx context.Context, postID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT hashtag_id FROM post_hashtags WHERE post_id = ?", postID)
	if err != nil {
		return nil, fmt.Errorf("running post hashtag IDs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	hashtagIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning hashtag IDs: %w", err)
		}
		hashtagIDs = append(hashtagIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return hashtagIDs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
