package storage

import (
	"context"
	"fmt"

	"ruteando/internal/domain/service"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the configured bucket for attempt attachments.
// The URL scheme selects the backend, e.g. "file:///var/data/adjuntos"
// or "gs://ruteando-adjuntos".
func NewBlobStorage(ctx context.Context, bucketURL string) (service.AttachmentStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)
	}

	return &blobStorage{bucket: bucket}, nil
}

// Save writes the attachment bytes under the given key.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", fmt.Errorf("failed to write attachment %s: %w", key, err)
	}

	return key, nil
}

// Close releases the underlying bucket.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}
