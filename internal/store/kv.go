// Package store provides the local key-value persistence used for widget
// layouts, content overrides, goals and feature toggles. Values are opaque
// bytes; callers own the serialization.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// KV is the persistence contract shared by all backends. A missing key is a
// valid result (ErrNotFound), not a backend failure; any other error means
// the persistence medium itself is unavailable and must be surfaced.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
