package storage

import (
	"context"
	"io"
)

// ObjectStore uploads and deletes public image blobs.
type ObjectStore interface {
	// Upload stores the blob under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete removes the blob behind a previously returned public URL.
	Delete(ctx context.Context, publicURL string) error
	// Owns reports whether the URL points into this store's bucket.
	Owns(publicURL string) bool
}
