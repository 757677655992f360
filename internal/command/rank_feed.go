package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// RankFeed produces one page of a user's feed. Personalization
// activates only when the user has at least one hashtag weight clearing
// the gate; otherwise the feed degrades to reverse-chronological
// paging. The response never reveals which branch served it.
type RankFeed struct {
	Feed    datasources.FeedLister
	Lister  datasources.PostLister
	Fetcher datasources.PostFetcher
}

func (c *RankFeed) Execute(
	ctx context.Context, userID uuid.UUID, options domain.PostListOptions,
) (domain.PostPage, error) {
	personalized := false
	if userID != uuid.Nil {
		var err error
		personalized, err = c.Feed.HasPersonalizationSignal(ctx, userID)
		if err != nil {
			return domain.PostPage{}, fmt.Errorf("checking personalization gate: %w", err)
		}
	}

	if !personalized {
		return c.chronological(ctx, options)
	}
	return c.weighted(ctx, userID, options)
}

func (c *RankFeed) chronological(
	ctx context.Context, options domain.PostListOptions,
) (domain.PostPage, error) {
	ids, err := c.Lister.ListLatestPostIDs(ctx, domain.PostFilters{}, options)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("listing latest posts: %w", err)
	}

	total, err := c.Lister.TotalMatchingPosts(ctx, domain.PostFilters{})
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("counting posts: %w", err)
	}

	posts, err := c.Fetcher.FetchPostsByID(ctx, ids)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("fetching posts: %w", err)
	}

	return domain.PostPage{
		Items:      posts,
		CountPages: domain.PagesCount(total, options.Limit),
	}, nil
}

func (c *RankFeed) weighted(
	ctx context.Context, userID uuid.UUID, options domain.PostListOptions,
) (domain.PostPage, error) {
	ids, err := c.Feed.ListWeightedPostIDs(ctx, userID, options)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("listing weighted posts: %w", err)
	}

	total, err := c.Feed.TotalWeightedPosts(ctx, userID)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("counting weighted posts: %w", err)
	}

	posts, err := c.Fetcher.FetchPostsByID(ctx, ids)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("fetching posts: %w", err)
	}

	return domain.PostPage{
		Items:      posts,
		CountPages: domain.PagesCount(total, options.Limit),
	}, nil
}
