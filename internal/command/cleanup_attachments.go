package command

import (
	"context"
	"fmt"
	"time"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// CleanupAttachments removes attachments that were soft-deleted or
// never linked to a post within the retention window. Blob removal is
// best-effort; rows are only deleted for blobs that went away, so a
// failed removal is retried on the next pass.
type CleanupAttachments struct {
	Attachments datasources.AttachmentStore
	Storage     datasources.ObjectStorage

	// Retention is how long an unattached upload may wait for its post.
	Retention time.Duration
	// BatchSize bounds one pass; leftovers wait for the next tick.
	BatchSize int
}

func (c *CleanupAttachments) Execute(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	cutoff := time.Now().Add(-c.Retention)
	attachments, err := c.Attachments.ListDeletableAttachments(ctx, cutoff, c.BatchSize)
	if err != nil {
		return fmt.Errorf("listing deletable attachments: %w", err)
	}
	if len(attachments) == 0 {
		return nil
	}

	removedIDs := make([]int64, 0, len(attachments))
	for _, attachment := range attachments {
		if err := c.Storage.Remove(ctx, attachment.Path); err != nil {
			logger.WarnContext(ctx, "failed to remove attachment blob",
				"attachment_id", attachment.ID, "path", attachment.Path, "error", err)
			continue
		}
		removedIDs = append(removedIDs, attachment.ID)
	}
	if len(removedIDs) == 0 {
		return nil
	}

	if err := c.Attachments.DeleteAttachments(ctx, removedIDs); err != nil {
		return fmt.Errorf("deleting attachment records: %w", err)
	}

	logger.InfoContext(ctx, "cleaned up attachments", "count", len(removedIDs))
	return nil
}
