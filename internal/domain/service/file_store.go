package service

import (
	"context"
	"io"
)

// FileStore defines the interface for blob storage of uploaded documents.
// This abstracts the storage backend (local disk, in-memory, cloud buckets).
type FileStore interface {
	// Save writes the content under the given storage key, overwriting any
	// existing blob with the same key.
	Save(ctx context.Context, key, contentType string, content io.Reader) error

	// Open returns a reader for the blob stored under the key.
	// The caller is responsible for closing the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob stored under the key.
	Delete(ctx context.Context, key string) error
}
