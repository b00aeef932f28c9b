package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitual/internal/logger"
)

// Collection is a typed view over a key holding a JSON array. Reads and
// writes always cover the whole array.
type Collection[T any] struct {
	store Provider
	key   string
}

func NewCollection[T any](store Provider, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the storage key backing the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored items. A missing key is reported as ErrNotFound.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// LoadAll returns the stored items, or an empty slice if the key is absent
// or cannot be read. Read failures are logged, not returned.
func (c *Collection[T]) LoadAll(ctx context.Context) []T {
	items, err := c.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to load collection", "key", c.key, "error", err)
		}
		return []T{}
	}
	return items
}

// Exists reports whether the key has been written.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// SaveAll replaces the stored array with items.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}

// Remove deletes the key entirely.
func (c *Collection[T]) Remove(ctx context.Context) error {
	return c.store.Delete(ctx, c.key)
}

// Document is a typed view over a key holding a single JSON value.
type Document[T any] struct {
	store Provider
	key   string
}

func NewDocument[T any](store Provider, key string) *Document[T] {
	return &Document[T]{store: store, key: key}
}

// Load decodes the stored value. A missing key is reported as ErrNotFound.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	var v T
	raw, err := d.store.Get(ctx, d.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", d.key, err)
	}
	return v, nil
}

// LoadOr returns the stored value or def when it is absent or unreadable.
func (d *Document[T]) LoadOr(ctx context.Context, def T) T {
	v, err := d.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to load document", "key", d.key, "error", err)
		}
		return def
	}
	return v
}

func (d *Document[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}
	if err := d.store.Set(ctx, d.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.key, err)
	}
	return nil
}

func (d *Document[T]) Remove(ctx context.Context) error {
	return d.store.Delete(ctx, d.key)
}
