package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type RSS struct {
	FeedHostname string
	FeedPath     string
	Lister       interface {
		datasources.PostLister
		datasources.PostFetcher
	}
	CacheMaxAge time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "News Feed",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest posts published to the network",
		Created:     time.Now(),
	}

	filters, err := postFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post filters in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ids, err := c.Lister.ListLatestPostIDs(ctx, filters, options)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list post IDs for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	posts, err := c.Lister.FetchPostsByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%d", p.ID),
			IsPermaLink: "false",
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/v1/posts/%d", c.FeedHostname, p.ID)},
			Description: p.Content,
			Author:      &feeds.Author{Name: p.AuthorID.String()},
			Created:     p.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
