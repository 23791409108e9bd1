package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const defaultMaxRetries = 4

// retryingStore wraps an ObjectStore with bounded exponential backoff for
// transient failures. Puts are idempotent (same key, same bytes) so retrying
// them is safe; ErrObjectNotFound is never retried.
type retryingStore struct {
	inner      ObjectStore
	maxRetries uint64
}

var _ ObjectStore = (*retryingStore)(nil)

func WithRetry(inner ObjectStore) ObjectStore {
	return &retryingStore{inner: inner, maxRetries: defaultMaxRetries}
}

func (s *retryingStore) newBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return backoff.WithContext(backoff.WithMaxRetries(b, s.maxRetries), ctx)
}

func (s *retryingStore) PutObject(ctx context.Context, key string, data io.Reader) error {
	// Buffer the payload so every attempt writes identical bytes.
	content, err := io.ReadAll(data)
	if err != nil {
		return err
	}

	return backoff.Retry(func() error {
		if err := s.inner.PutObject(ctx, key, bytes.NewReader(content)); err != nil {
			slog.Warn("retrying object put", "key", key, "error", err)
			return err
		}
		return nil
	}, s.newBackoff(ctx))
}

func (s *retryingStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	var content []byte
	err := backoff.Retry(func() error {
		data, err := s.inner.GetObject(ctx, key)
		if err != nil {
			if errors.Is(err, ErrObjectNotFound) {
				return backoff.Permanent(err)
			}
			slog.Warn("retrying object get", "key", key, "error", err)
			return err
		}
		content = data
		return nil
	}, s.newBackoff(ctx))
	return content, err
}

func (s *retryingStore) DeleteObject(ctx context.Context, key string) error {
	return backoff.Retry(func() error {
		if err := s.inner.DeleteObject(ctx, key); err != nil {
			if errors.Is(err, ErrObjectNotFound) {
				return backoff.Permanent(err)
			}
			slog.Warn("retrying object delete", "key", key, "error", err)
			return err
		}
		return nil
	}, s.newBackoff(ctx))
}
