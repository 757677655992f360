package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/hiostage/news-feed-service/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func listOptionsFromQuery(q url.Values) (domain.PostListOptions, error) {
	options := domain.PostListOptions{
		Page:  defaultPage,
		Limit: defaultLimit,
	}

	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.PostListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return domain.PostListOptions{}, fmt.Errorf("invalid page value [%d]", page)
		}
		options.Page = int(page)
	}

	if q.Has("limit") {
		limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return domain.PostListOptions{}, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if limit > maxLimit {
			return domain.PostListOptions{}, fmt.Errorf("limit [%d] exceeds maximum [%d]", limit, maxLimit)
		}
		if limit < 1 {
			return domain.PostListOptions{}, fmt.Errorf("invalid limit value [%d]", limit)
		}
		options.Limit = int(limit)
	}

	return options, nil
}
