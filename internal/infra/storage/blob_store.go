// Package storage provides the blob-backed implementation of the domain file store.
package storage

import (
	"context"
	"io"
	"log/slog"

	"coursebridge/config"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register drivers for the bucket URL schemes we support.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobFileStore implements service.FileStore on top of a gocloud.dev bucket,
// so the same code serves local disk (file://) and in-memory (mem://) backends.
type blobFileStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the file store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStore opens the configured bucket and returns it as a service.FileStore.
func NewFileStore(params Params) (service.FileStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	// Register lifecycle hook to close the bucket on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing file store bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("File store initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobFileStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save writes the content under the given storage key, overwriting any
// existing blob with the same key.
func (s *blobFileStore) Save(ctx context.Context, key, contentType string, content io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open blob writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return errors.Wrapf(err, "failed to write blob %s", key)
	}

	// The write is only durable once the writer is closed.
	return errors.Wrapf(writer.Close(), "failed to finalize blob %s", key)
}

// Open returns a reader for the blob stored under the key.
// The caller is responsible for closing the reader.
func (s *blobFileStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob %s", key)
	}

	return reader, nil
}

// Delete removes the blob stored under the key.
func (s *blobFileStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// Module provides the file store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStore),
)
