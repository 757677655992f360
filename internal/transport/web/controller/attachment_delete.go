package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

type AttachmentDelete struct {
	DeleteCmd *command.DeleteAttachment
}

func (c AttachmentDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	attachmentID, err := strconv.ParseInt(mux.Vars(r)["attachment_id"], 10, 64)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse attachment ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.DeleteCmd.Execute(ctx, domain.UserIDFromContext(ctx), attachmentID); err != nil {
		logger.ErrorContext(ctx, "unable to delete attachment", "attachment_id", attachmentID, "error", err)
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
