package database

import (
	"context"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore creates an in-memory sqlite store with migrations applied
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// setupTestStoreFile creates a file-based store for testing persistence across restarts
func setupTestStoreFile(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "twodo-test.db")
	store, err := OpenSQLiteStore(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open file database: %v", err)
	}
	return store, path
}
