// Package database defines the key/value persistence backends
package database

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store is closed")

// KVStore is the persistence adapter the todo store writes through.
// Values are opaque strings. A missing key is reported with ok=false and a nil error.
type KVStore interface {
	// Get returns the value stored under key
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Close releases the backend's resources
	Close() error
}

// Compile-time verification that every backend implements KVStore
var (
	_ KVStore = (*SQLiteStore)(nil)
	_ KVStore = (*RedisStore)(nil)
	_ KVStore = (*MemoryStore)(nil)
)
