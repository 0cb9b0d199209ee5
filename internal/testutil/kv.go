package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/thenoetrevino/twodo/internal/database"
)

// ErrInjected is the error returned by FlakyStore failures
var ErrInjected = errors.New("injected storage failure")

// FlakyStore wraps a MemoryStore and fails the first FailSets writes and,
// while FailGets is set, every read. It counts calls for assertions.
type FlakyStore struct {
	*database.MemoryStore

	mu       sync.Mutex
	FailSets int
	FailGets bool
	sets     int
	gets     int
}

// NewFlakyStore creates a FlakyStore over an empty MemoryStore
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{MemoryStore: database.NewMemoryStore()}
}

// Get fails with ErrInjected while FailGets is set
func (s *FlakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	s.gets++
	fail := s.FailGets
	s.mu.Unlock()

	if fail {
		return "", false, ErrInjected
	}
	return s.MemoryStore.Get(ctx, key)
}

// Set fails with ErrInjected until FailSets attempts have been made
func (s *FlakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.sets++
	fail := s.sets <= s.FailSets
	s.mu.Unlock()

	if fail {
		return ErrInjected
	}
	return s.MemoryStore.Set(ctx, key, value)
}

// SetCalls returns how many times Set was called
func (s *FlakyStore) SetCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// GetCalls returns how many times Get was called
func (s *FlakyStore) GetCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

// Seed stores values directly, bypassing failure injection
func Seed(t *testing.T, store database.KVStore, values map[string]string) {
	t.Helper()

	if flaky, ok := store.(*FlakyStore); ok {
		store = flaky.MemoryStore
	}
	for key, value := range values {
		if err := store.Set(context.Background(), key, value); err != nil {
			t.Fatalf("Failed to seed %s: %v", key, err)
		}
	}
}

// KeepOpen wraps a KVStore and ignores Close, so tests can reopen the
// same data after a command has shut its application down
type KeepOpen struct {
	database.KVStore
}

// Close does nothing
func (KeepOpen) Close() error {
	return nil
}
