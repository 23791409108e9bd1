package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/murean5/ML-OPS/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails the first failures calls of each operation, then delegates
// to an in-memory map.
type flakyStore struct {
	failures int
	calls    int
	objects  map[string][]byte
}

func newFlakyStore(failures int) *flakyStore {
	return &flakyStore{failures: failures, objects: make(map[string][]byte)}
}

func (s *flakyStore) flake() error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("transient storage error")
	}
	return nil
}

func (s *flakyStore) PutObject(ctx context.Context, key string, data io.Reader) error {
	if err := s.flake(); err != nil {
		return err
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	s.objects[key] = content
	return nil
}

func (s *flakyStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	if err := s.flake(); err != nil {
		return nil, err
	}
	content, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return content, nil
}

func (s *flakyStore) DeleteObject(ctx context.Context, key string) error {
	if err := s.flake(); err != nil {
		return err
	}
	if _, ok := s.objects[key]; !ok {
		return storage.ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

func TestRetryRecoversFromTransientFailures(t *testing.T) {
	inner := newFlakyStore(2)
	store := storage.WithRetry(inner)
	ctx := context.Background()

	require.NoError(t, store.PutObject(ctx, "key", bytes.NewReader([]byte("payload"))))
	assert.Equal(t, []byte("payload"), inner.objects["key"])
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := newFlakyStore(100)
	store := storage.WithRetry(inner)

	err := store.PutObject(context.Background(), "key", bytes.NewReader([]byte("payload")))
	assert.Error(t, err)
	// Initial attempt plus the bounded retries, nothing more.
	assert.Equal(t, 5, inner.calls)
}

func TestRetryDoesNotRetryNotFound(t *testing.T) {
	inner := newFlakyStore(0)
	store := storage.WithRetry(inner)

	_, err := store.GetObject(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	assert.Equal(t, 1, inner.calls)
}
