package storage

import "context"

// KV is a minimal string-keyed byte store.
type KV interface {
	// Get returns ErrNotFound when the key is missing.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Close() error
}
