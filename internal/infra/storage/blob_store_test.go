package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *blobFileStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		if err := bucket.Close(); err != nil {
			t.Errorf("failed to close bucket: %v", err)
		}
	})

	return &blobFileStore{
		bucket: bucket,
		logger: slog.Default(),
	}
}

func TestBlobFileStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	content := "standard operating procedure for onboarding"
	err := store.Save(ctx, "requests/req-1/sop.txt", "text/plain", strings.NewReader(content))
	require.NoError(t, err)

	reader, err := store.Open(ctx, "requests/req-1/sop.txt")
	require.NoError(t, err)

	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestBlobFileStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "doc", "text/plain", strings.NewReader("first")))
	require.NoError(t, store.Save(ctx, "doc", "text/plain", strings.NewReader("second")))

	reader, err := store.Open(ctx, "doc")
	require.NoError(t, err)

	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestBlobFileStore_OpenMissingKey(t *testing.T) {
	store := newTestStore(t)

	reader, err := store.Open(context.Background(), "does-not-exist")
	assert.Error(t, err)
	assert.Nil(t, reader)
	assert.Contains(t, err.Error(), "failed to open blob")
}

func TestBlobFileStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "doc", "text/plain", strings.NewReader("payload")))
	require.NoError(t, store.Delete(ctx, "doc"))

	_, err := store.Open(ctx, "doc")
	assert.Error(t, err)
}

func TestBlobFileStore_DeleteMissingKey(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete(context.Background(), "does-not-exist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete blob")
}
