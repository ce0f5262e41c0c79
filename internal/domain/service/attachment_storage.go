package service

import "context"

// AttachmentStorage stores delivery-attempt evidence (photos, signatures) and
// returns stable keys the attempt record references.
type AttachmentStorage interface {
	// Save writes the attachment bytes and returns its storage key.
	Save(ctx context.Context, key string, contentType string, data []byte) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
