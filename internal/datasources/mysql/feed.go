package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func (r *Repository) HasPersonalizationSignal(ctx context.Context, userID uuid.UUID) (bool, error) {
	sb := sqlbuilder.Select("1")
	sb.From("hashtag_weight")
	sb.Where(
		sb.Equal("user_id", userID.String()),
		sb.GreaterEqualThan("weight", domain.MinHashtagWeightGate),
	)
	sb.Limit(1)

	query, args := sb.Build()

	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking personalization gate: %w", err)
}

func (r *Repository) ListWeightedPostIDs(
	ctx context.Context,
	userID uuid.UUID,
	options domain.PostListOptions,
) ([]int64, error) {
	sb := buildWeightedFeedQuery(userID)

	sb.OrderBy(
		"posts.created_at DESC",
		"COALESCE(author_weight.weight, 0) DESC",
		"COALESCE(SUM(hashtag_weight.weight), 0) DESC",
	)
	sb.Offset(options.Offset())
	sb.Limit(options.Limit)

	query, args := sb.Build()
	return r.queryPostIDs(ctx, query, args)
}

func (r *Repository) TotalWeightedPosts(ctx context.Context, userID uuid.UUID) (int64, error) {
	inner := buildWeightedFeedQuery(userID)

	sb := sqlbuilder.Select("COUNT(*)")
	sb.From(sb.BuilderAs(inner, "weighted"))

	query, args := sb.Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting weighted posts: %w", err)
	}
	return count, nil
}

// buildWeightedFeedQuery selects the IDs of posts clearing the
// personalization filter for userID: posts are left-joined to the
// viewer's author and hashtag weights (absent rows count as zero) and a
// post is kept when either its author weight reaches
// domain.MinAuthorWeight or its summed hashtag weight reaches
// domain.MinHashtagWeightSum.
func buildWeightedFeedQuery(userID uuid.UUID) *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select("posts.id")
	sb.From("posts")

	sb.JoinWithOption(sqlbuilder.LeftJoin, "author_weight",
		"author_weight.user_id = "+sb.Args.Add(userID.String()),
		"author_weight.author_id = posts.user_id",
	)
	sb.JoinWithOption(sqlbuilder.LeftJoin, "post_hashtags",
		"post_hashtags.post_id = posts.id",
	)
	sb.JoinWithOption(sqlbuilder.LeftJoin, "hashtag_weight",
		"hashtag_weight.user_id = "+sb.Args.Add(userID.String()),
		"hashtag_weight.hashtag_id = post_hashtags.hashtag_id",
	)

	sb.GroupBy("posts.id", "posts.created_at", "author_weight.weight")
	sb.Having(sb.Or(
		sb.GreaterEqualThan("COALESCE(author_weight.weight, 0)", domain.MinAuthorWeight),
		sb.GreaterEqualThan("COALESCE(SUM(hashtag_weight.weight), 0)", domain.MinHashtagWeightSum),
	))

	return sb
}
