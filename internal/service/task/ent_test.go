package task

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeBlobStore records delete calls and fails the configured keys.
type fakeBlobStore struct {
	mu      sync.Mutex
	deleted []string
	failOn  map[string]bool
}

func (f *fakeBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	return nil
}

func (f *fakeBlobStore) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://blobs.test/" + key, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, key)
	f.mu.Unlock()
	if f.failOn[key] {
		return errors.New("delete failed")
	}
	return nil
}

func TestDeleteBlobsCompletesWhenOneDeleteFails(t *testing.T) {
	blobs := &fakeBlobStore{failOn: map[string]bool{"tasks/a/2-b.png": true}}
	paths := []string{"tasks/a/1-a.png", "tasks/a/2-b.png", "tasks/a/3-c.png"}

	deleteBlobs(context.Background(), blobs, paths)

	// every blob must be attempted even though one delete errored
	assert.ElementsMatch(t, paths, blobs.deleted)
}

func TestDeleteBlobsNoPaths(t *testing.T) {
	blobs := &fakeBlobStore{}
	deleteBlobs(context.Background(), blobs, nil)
	assert.Empty(t, blobs.deleted)
}
