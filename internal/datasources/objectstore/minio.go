package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

var _ datasources.ObjectStorage = (*Store)(nil)

// Store keeps attachment blobs in a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
}

func New(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket [%s]: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket [%s]: %w", bucket, err)
		}
	}

	return &Store{client: client, bucket: bucket}, nil
}

func (s *Store) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading object [%s]: %w", path, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing object [%s]: %w", path, err)
	}
	return nil
}

// RemoveMany deletes objects best-effort: failures are logged and the
// remaining objects are still attempted.
func (s *Store) RemoveMany(ctx context.Context, paths []string) error {
	logger := domain.LoggerFromContext(ctx)

	var failed int
	for _, path := range paths {
		if err := s.Remove(ctx, path); err != nil {
			logger.WarnContext(ctx, "failed to remove object", "path", path, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("removing objects: %d of %d failed", failed, len(paths))
	}
	return nil
}
