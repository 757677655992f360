package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type PostCreate struct {
	CreateCmd *command.CreatePost
}

type PostCreateRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Hashtags      []string `json:"hashtags"`
	AttachmentIDs []int64  `json:"attachment_ids"`
}

type PostCreateResponse struct {
	ID int64 `json:"id"`
}

func (c PostCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req PostCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to decode post create request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := c.CreateCmd.Execute(ctx, domain.NewPost{
		AuthorID:      domain.UserIDFromContext(ctx),
		Title:         req.Title,
		Content:       req.Content,
		Hashtags:      req.Hashtags,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to create post", "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(PostCreateResponse{ID: id}); err != nil {
		logger.ErrorContext(ctx, "unable to write post create response", "error", err)
	}
}
