package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type FeedPersonalized struct {
	Ranker *command.RankFeed
}

func (c FeedPersonalized) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := c.Ranker.Execute(ctx, domain.UserIDFromContext(ctx), options)
	if err != nil {
		logger.ErrorContext(ctx, "unable to build feed page", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		logger.ErrorContext(ctx, "unable to write feed page to response", "error", err)
	}
}
