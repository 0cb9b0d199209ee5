package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)

	value, ok, err := store.Get(context.Background(), "todoList")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "lastMove", `"work"`))
	require.NoError(t, store.Set(ctx, "lastMove", `"travel"`))

	value, ok, err := store.Get(ctx, "lastMove")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"travel"`, value)

	var rows int
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows, "upsert should keep a single row per key")
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, path := setupTestStoreFile(t)

	blob := `{"1":{"text":"Buy milk","category":"work","isComplete":false}}`
	require.NoError(t, store.Set(ctx, "todoList", blob))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "todoList")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, blob, value)
}

// TestMigrationIdempotency ensures migrations can run multiple times without data loss
func TestMigrationIdempotency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.Set(ctx, "activeCategory", `"travel"`))

	for i := 0; i < 3; i++ {
		require.NoError(t, runMigrations(ctx, store.db), "migration run %d", i+1)
	}

	value, ok, err := store.Get(ctx, "activeCategory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"travel"`, value)
}

func TestSQLiteStore_ClosedStoreFails(t *testing.T) {
	t.Parallel()
	store, _ := setupTestStoreFile(t)
	require.NoError(t, store.Close())

	err := store.Set(context.Background(), "k", "v")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, store.Close())
	_, _, err = store.Get(ctx, "k")
	assert.True(t, errors.Is(err, ErrClosed))
	assert.ErrorIs(t, store.Set(ctx, "k", "v"), ErrClosed)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	t.Parallel()
	_, err := NewRedisStore(context.Background(), "not-a-redis-url", "twodo:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	t.Parallel()
	store := &RedisStore{prefix: "twodo:"}
	assert.Equal(t, "twodo:todoList", store.Key("todoList"))
}
