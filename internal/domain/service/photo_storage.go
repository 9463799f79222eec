package service

import (
	"context"
	"io"
	"time"
)

// PhotoStorage is the object store that receives uploaded photos.
type PhotoStorage interface {
	// Upload streams r into key and returns the number of bytes written.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)

	// Delete removes key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns a link to key, either public or signed for ttl.
	URL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
