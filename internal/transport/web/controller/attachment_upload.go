package controller

import (
	"encoding/json"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// maxUploadBytes caps a single attachment upload.
const maxUploadBytes = 20 << 20

type AttachmentUpload struct {
	UploadCmd *command.UploadAttachment
}

type AttachmentUploadResponse struct {
	ID int64 `json:"id"`
}

func (c AttachmentUpload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.ErrorContext(ctx, "unable to parse multipart form", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.ErrorContext(ctx, "missing file in upload request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	id, err := c.UploadCmd.Execute(ctx, domain.UserIDFromContext(ctx),
		header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		logger.ErrorContext(ctx, "unable to upload attachment", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AttachmentUploadResponse{ID: id}); err != nil {
		logger.ErrorContext(ctx, "unable to write upload response", "error", err)
	}
}
