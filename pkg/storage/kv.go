package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is a persistent key-value store holding raw blobs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
