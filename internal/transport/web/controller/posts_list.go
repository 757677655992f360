package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type PostsList struct {
	Lister interface {
		datasources.PostLister
		datasources.PostFetcher
	}
}

func (c PostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filters, err := postFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post filters in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := filters.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid post filters", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if filters.SubscribedOnly && domain.UserIDFromContext(ctx) == uuid.Nil {
		logger.ErrorContext(ctx, "subscriptions filter requires authentication")
		w.WriteHeader(http.StatusUnauthorized)
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
		logger.ErrorContext(ctx, "unable to list post IDs", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := c.Lister.TotalMatchingPosts(ctx, filters)
	if err != nil {
		logger.ErrorContext(ctx, "unable to count posts", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	posts, err := c.Lister.FetchPostsByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(domain.PostPage{
		Items:      posts,
		CountPages: domain.PagesCount(total, options.Limit),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write posts to response", "error", err)
	}
}

func postFiltersFromQuery(q url.Values) (domain.PostFilters, error) {
	var filters domain.PostFilters

	if q.Has("author_id") {
		authorID, err := uuid.Parse(q.Get("author_id"))
		if err != nil {
			return domain.PostFilters{}, fmt.Errorf("unable to parse author_id from query: %w", err)
		}
		filters.AuthorID = authorID
	}

	if q.Has("date_from") {
		dateFrom, err := time.Parse(time.DateOnly, q.Get("date_from"))
		if err != nil {
			return domain.PostFilters{}, fmt.Errorf("unable to parse date_from from query: %w", err)
		}
		filters.DateFrom = dateFrom
	}

	if q.Has("date_to") {
		dateTo, err := time.Parse(time.DateOnly, q.Get("date_to"))
		if err != nil {
			return domain.PostFilters{}, fmt.Errorf("unable to parse date_to from query: %w", err)
		}
		filters.DateTo = dateTo
	}

	if q.Has("search_title") {
		filters.SearchTitle = q.Get("search_title")
	}

	if q.Has("search_content") {
		filters.SearchContent = q.Get("search_content")
	}

	if q.Has("hashtags") {
		filters.Hashtags = strings.Split(q.Get("hashtags"), ",")
	}

	if q.Has("subscriptions") {
		switch q.Get("subscriptions") {
		case "true":
			filters.SubscribedOnly = true
		case "false":
		default:
			return domain.PostFilters{}, fmt.Errorf("invalid subscriptions value [%s]", q.Get("subscriptions"))
		}
	}

	return filters, nil
}
