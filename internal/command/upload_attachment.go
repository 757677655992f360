package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// UploadAttachment stores a blob in object storage and records it as an
// unattached upload. The blob goes out first; if the record insert then
// fails the blob is orphaned and the janitor reclaims it later.
type UploadAttachment struct {
	Attachments datasources.AttachmentStore
	Storage     datasources.ObjectStorage
}

func (c *UploadAttachment) Execute(
	ctx context.Context, ownerID uuid.UUID, filename string, r io.Reader, size int64, contentType string,
) (int64, error) {
	objectPath := fmt.Sprintf("%s/%s%s", ownerID, uuid.NewString(), path.Ext(filename))

	if err := c.Storage.Upload(ctx, objectPath, r, size, contentType); err != nil {
		return 0, fmt.Errorf("uploading attachment blob: %w", err)
	}

	id, err := c.Attachments.InsertAttachment(ctx, ownerID, objectPath)
	if err != nil {
		return 0, fmt.Errorf("recording attachment: %w", err)
	}
	return id, nil
}

// DeleteAttachment soft-deletes an attachment owned by the caller. The
// blob itself stays until the janitor's next pass.
type DeleteAttachment struct {
	Attachments datasources.AttachmentStore
}

func (c *DeleteAttachment) Execute(ctx context.Context, ownerID uuid.UUID, attachmentID int64) error {
	attachment, err := c.Attachments.FetchAttachment(ctx, attachmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching attachment: %w", err)
	}
	if attachment.OwnerID != ownerID {
		return domain.ErrNotFound
	}

	if err := c.Attachments.MarkAttachmentDeleted(ctx, attachmentID); err != nil {
		return fmt.Errorf("marking attachment deleted: %w", err)
	}
	return nil
}
