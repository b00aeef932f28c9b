package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Provider is a flat key-value namespace. Every value is one JSON document
// and is replaced as a whole on Set.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Documents
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error

	// Utils
	GetConfigPath() string
}
