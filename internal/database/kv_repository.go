package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore is the default on-disk KVStore backed by the kv table
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an initialized database connection (see InitDB)
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore initializes the database at path and wraps it
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// Get returns the value stored under key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
