package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type PostLike struct {
	LikeCmd *command.LikePost
}

func (c PostLike) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.LikeCmd.Execute(ctx, domain.UserIDFromContext(ctx), postID); err != nil {
		logger.ErrorContext(ctx, "unable to like post", "post_id", postID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type PostUnlike struct {
	UnlikeCmd *command.UnlikePost
}

func (c PostUnlike) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.UnlikeCmd.Execute(ctx, domain.UserIDFromContext(ctx), postID); err != nil {
		logger.ErrorContext(ctx, "unable to unlike post", "post_id", postID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
