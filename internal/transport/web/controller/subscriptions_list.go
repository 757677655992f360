package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type SubscriptionsList struct {
	Subscriptions datasources.SubscriptionStore
}

func (c SubscriptionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	subscriptions, total, err := c.Subscriptions.ListSubscriptions(ctx, domain.UserIDFromContext(ctx), options)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list subscriptions", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(domain.SubscriptionPage{
		Items:      subscriptions,
		CountPages: domain.PagesCount(total, options.Limit),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write subscriptions to response", "error", err)
	}
}
