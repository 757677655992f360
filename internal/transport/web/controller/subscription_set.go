package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type SubscriptionCreate struct {
	SubscribeCmd *command.Subscribe
}

func (c SubscriptionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	authorID, err := uuid.Parse(mux.Vars(r)["author_id"])
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse author ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userID := domain.UserIDFromContext(ctx)
	if userID == authorID {
		logger.ErrorContext(ctx, "attempt to subscribe to self", "author_id", authorID)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.SubscribeCmd.Execute(ctx, userID, authorID); err != nil {
		logger.ErrorContext(ctx, "unable to create subscription", "author_id", authorID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SubscriptionDelete struct {
	UnsubscribeCmd *command.Unsubscribe
}

func (c SubscriptionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	authorID, err := uuid.Parse(mux.Vars(r)["author_id"])
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse author ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.UnsubscribeCmd.Execute(ctx, domain.UserIDFromContext(ctx), authorID); err != nil {
		logger.ErrorContext(ctx, "unable to delete subscription", "author_id", authorID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
