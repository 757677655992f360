package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListLatestPostIDs(
	ctx context.Context,
	filters domain.PostFilters,
	options domain.PostListOptions,
) ([]int64, error) {
	sb := sqlbuilder.Select("posts.id")
	sb.From("posts")

	buildPostsFilter(sb, filters, domain.UserIDFromContext(ctx))

	sb.OrderBy("posts.created_at DESC")
	sb.Offset(options.Offset())
	sb.Limit(options.Limit)

	query, args := sb.Build()
	return r.queryPostIDs(ctx, query, args)
}

func (r *Repository) TotalMatchingPosts(
	ctx context.Context,
	filters domain.PostFilters,
) (int64, error) {
	inner := sqlbuilder.Select("posts.id")
	inner.From("posts")
	buildPostsFilter(inner, filters, domain.UserIDFromContext(ctx))

	sb := sqlbuilder.Select("COUNT(*)")
	sb.From(sb.BuilderAs(inner, "matching"))

	query, args := sb.Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting matching posts: %w", err)
	}
	return count, nil
}

// buildPostsFilter composes the optional listing predicates onto sb.
// Each step contributes only when its filter field is set; conditions
// accumulate with AND. The hashtag step requires a post to carry every
// requested hashtag, expressed as a grouped distinct-match count.
func buildPostsFilter(sb *sqlbuilder.SelectBuilder, filters domain.PostFilters, viewerID uuid.UUID) {
	var conds []string

	if filters.AuthorID != uuid.Nil {
		conds = append(conds, sb.Equal("posts.user_id", filters.AuthorID.String()))
	}

	if !filters.DateFrom.IsZero() {
		conds = append(conds, sb.GreaterEqualThan("posts.created_at", filters.DateFrom))
	}

	if !filters.DateTo.IsZero() {
		// DateTo is inclusive, so the cutoff is the start of the next day.
		conds = append(conds, sb.LessThan("posts.created_at", filters.DateTo.AddDate(0, 0, 1)))
	}

	if filters.SearchTitle != "" {
		conds = append(conds, sb.Like("posts.title", "%"+filters.SearchTitle+"%"))
	}

	if filters.SearchContent != "" {
		conds = append(conds, sb.Like("posts.content", "%"+filters.SearchContent+"%"))
	}

	if filters.SubscribedOnly && viewerID != uuid.Nil {
		sb.Join("subscriptions", "subscriptions.author_id = posts.user_id")
		conds = append(conds, sb.Equal("subscriptions.user_id", viewerID.String()))
	}

	if len(filters.Hashtags) > 0 {
		names := make([]interface{}, 0, len(filters.Hashtags))
		for _, name := range filters.Hashtags {
			names = append(names, normalizeHashtag(name))
		}

		sb.Join("post_hashtags", "post_hashtags.post_id = posts.id")
		sb.Join("hashtags", "hashtags.id = post_hashtags.hashtag_id")
		conds = append(conds, sb.In("hashtags.name", names...))
		sb.GroupBy("posts.id", "posts.created_at")
		sb.Having(fmt.Sprintf("COUNT(DISTINCT hashtags.name) >= %d", len(filters.Hashtags)))
	}

	if len(conds) > 0 {
		sb.Where(conds...)
	}
}

func (r *Repository) FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}

	viewerID := domain.UserIDFromContext(ctx)

	idArgs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"posts.id",
		"posts.user_id",
		"posts.title",
		"posts.content",
		"posts.original_post_id",
		"posts.created_at",
		"posts.updated_at",
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)",
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)",
		"EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = "+
			sb.Args.Add(viewerID.String())+")",
	)
	sb.From("posts")
	sb.Where(sb.In("posts.id", idArgs...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	postMap := make(map[int64]domain.Post, len(ids))
	for rows.Next() {
		var (
			post           domain.Post
			authorID       string
			title, content sql.NullString
			originalID     sql.NullInt64
		)
		if err := rows.Scan(
			&post.ID,
			&authorID,
			&title,
			&content,
			&originalID,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.LikesCount,
			&post.CommentsCount,
			&post.LikedByViewer,
		); err != nil {
			return nil, fmt.Errorf("scanning posts: %w", err)
		}

		post.AuthorID, err = uuid.Parse(authorID)
		if err != nil {
			return nil, fmt.Errorf("parsing post author ID: %w", err)
		}
		post.Title = title.String
		post.Content = content.String
		if originalID.Valid {
			post.OriginalPostID = &originalID.Int64
		}

		postMap[post.ID] = post
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if err := r.attachHashtagNames(ctx, postMap, idArgs); err != nil {
		return nil, err
	}

	// Build results in the same order as the input IDs.
	posts := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := postMap[id]; exists {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

func (r *Repository) attachHashtagNames(
	ctx context.Context, postMap map[int64]domain.Post, idArgs []interface{},
) error {
	sb := sqlbuilder.Select("post_hashtags.post_id", "hashtags.name")
	sb.From("post_hashtags")
	sb.Join("hashtags", "hashtags.id = post_hashtags.hashtag_id")
	sb.Where(sb.In("post_hashtags.post_id", idArgs...))
	sb.OrderBy("hashtags.name")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running post hashtags query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			postID int64
			name   string
		)
		if err := rows.Scan(&postID, &name); err != nil {
			return fmt.Errorf("scanning post hashtags: %w", err)
		}
		if post, exists := postMap[postID]; exists {
			post.Hashtags = append(post.Hashtags, name)
			postMap[postID] = post
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating post hashtag rows: %w", err)
	}
	return nil
}

func (r *Repository) queryPostIDs(ctx context.Context, query string, args []interface{}) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running post IDs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	postIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning post IDs: %w", err)
		}
		postIDs = append(postIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return postIDs, nil
}

func normalizeHashtag(name string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "#"))
}
