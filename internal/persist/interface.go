// Package persist mirrors in-memory state to a KVStore without blocking the caller
package persist

import (
	"context"
	"errors"
)

// ErrWriterClosed is returned by Save after Close
var ErrWriterClosed = errors.New("persist writer is closed")

// Persister accepts fire-and-forget writes.
// Save must return promptly; the write itself may complete later or fail and be logged.
type Persister interface {
	Save(key, value string) error
}

// Flusher is implemented by persisters that can wait for queued writes
type Flusher interface {
	Flush(ctx context.Context) error
}

// Discard is a Persister that drops every write
var Discard Persister = discard{}

type discard struct{}

func (discard) Save(string, string) error { return nil }

// Compile-time verification that *Writer implements Persister and Flusher
var (
	_ Persister = (*Writer)(nil)
	_ Flusher   = (*Writer)(nil)
)
