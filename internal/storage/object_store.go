package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the minimal contract the registries and engines depend on:
// a key-addressed blob store for raw dataset files and serialized weights.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data io.Reader) error

	GetObject(ctx context.Context, key string) ([]byte, error)

	DeleteObject(ctx context.Context, key string) error
}
