package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type RepostCreate struct {
	RepostCmd *command.CreateRepost
}

func (c RepostCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse post ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req PostCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode repost request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := c.RepostCmd.Execute(ctx, domain.NewPost{
		AuthorID:      domain.UserIDFromContext(ctx),
		Title:         req.Title,
		Content:       req.Content,
		Hashtags:      req.Hashtags,
		AttachmentIDs: req.AttachmentIDs,
	}, postID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to create repost", "post_id", postID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(PostCreateResponse{ID: id}); err != nil {
		logger.ErrorContext(ctx, "unable to write repost response", "error", err)
	}
}
