package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type CommentLike struct {
	LikeCmd *command.LikeComment
}

func (c CommentLike) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	commentID, err := strconv.ParseInt(mux.Vars(r)["comment_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse comment ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.LikeCmd.Execute(ctx, domain.UserIDFromContext(ctx), commentID); err != nil {
		logger.ErrorContext(ctx, "unable to like comment", "comment_id", commentID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CommentUnlike struct {
	UnlikeCmd *command.UnlikeComment
}

func (c CommentUnlike) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	commentID, err := strconv.ParseInt(mux.Vars(r)["comment_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse comment ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.UnlikeCmd.Execute(ctx, domain.UserIDFromContext(ctx), commentID); err != nil {
		logger.ErrorContext(ctx, "unable to unlike comment", "comment_id", commentID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
