package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type PostGet struct {
	Fetcher datasources.PostFetcher
}

func (c PostGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	posts, err := c.Fetcher.FetchPostsByID(ctx, []int64{postID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch post", "post_id", postID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(posts) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(posts[0]); err != nil {
		logger.ErrorContext(ctx, "unable to write post to response", "error", err)
	}
}
