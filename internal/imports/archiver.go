// Package imports keeps the audit trail of batch imports: raw uploaded files
// archived to object storage, persisted import reports, and the retention
// purge that runs in the background worker.
package imports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"leadtrack_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archiver stores raw import payloads for later audit and re-download.
type Archiver interface {
	Archive(ctx context.Context, key string, data []byte, contentType string) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// MinIOArchiver implements Archiver on a MinIO bucket.
type MinIOArchiver struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchiver creates an archiver over the configured bucket.
func NewMinIOArchiver(cfg config.StorageConfig) (*MinIOArchiver, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create MinIO client: %w", err)
	}

	return &MinIOArchiver{client: client, bucket: cfg.GetMinIOBucketImportFiles()}, nil
}

// EnsureBucketExists creates the bucket if it doesn't exist.
func (a *MinIOArchiver) EnsureBucketExists(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

// Archive stores one raw import payload under the given key.
func (a *MinIOArchiver) Archive(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("archive %s: %w", key, err)
	}
	return nil
}

// PurgeOlderThan removes archived files last modified before the cutoff and
// returns how many were deleted. Import report rows are kept; only the raw
// payloads expire.
func (a *MinIOArchiver) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for object := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return removed, object.Err
		}
		if !object.LastModified.Before(cutoff) {
			continue
		}
		if err := a.client.RemoveObject(ctx, a.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove %s: %w", object.Key, err)
		}
		removed++
	}
	return removed, nil
}
