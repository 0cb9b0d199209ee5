package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/database"
	"github.com/thenoetrevino/twodo/internal/persist"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

// App holds the application's long-lived state and owns its lifecycle.
// Views and commands receive it by reference; there are no package-level singletons.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// KV is the backend the writer persists to and Load reads from
	KV database.KVStore

	// Writer queues store mutations to KV in the background
	Writer *persist.Writer

	// Store is the two-list task state machine
	Store *todo.Store
}

// New opens the configured storage backend and wires the writer and store.
// The store starts in the loading state; call Load before presenting tasks.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	kv := options.kv
	if kv == nil {
		var err error
		kv, err = OpenKVStore(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
	}

	writer := persist.NewWriter(kv,
		persist.WithLogger(logger),
		persist.WithWriteTimeout(cfg.Storage.WriteTimeout),
	)

	storeOpts := []todo.Option{
		todo.WithLogger(logger),
		todo.WithKeys(cfg.Storage.TasksKey, cfg.Storage.CategoryKey),
		todo.WithDefaultCategory(cfg.Category()),
	}
	storeOpts = append(storeOpts, options.storeOpts...)

	logger.Debug("app initialized", "backend", cfg.Storage.Backend)

	return &App{
		Config: cfg,
		Logger: logger,
		KV:     kv,
		Writer: writer,
		Store:  todo.New(writer, storeOpts...),
	}, nil
}

// OpenKVStore opens the backend named by storage.Backend
func OpenKVStore(ctx context.Context, storage config.StorageConfig) (database.KVStore, error) {
	switch storage.Backend {
	case config.BackendSQLite, "":
		store, err := database.OpenSQLiteStore(ctx, storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	case config.BackendRedis:
		store, err := database.NewRedisStore(ctx, storage.RedisURL, storage.KeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return store, nil
	case config.BackendMemory:
		return database.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", config.ErrInvalidConfig, storage.Backend)
	}
}

// Load restores saved tasks into the store. Failures are logged by the store
// and returned for callers that want to report them.
func (a *App) Load(ctx context.Context) error {
	return a.Store.Load(ctx, a.KV)
}

// Flush waits for queued writes to reach the backend
func (a *App) Flush(ctx context.Context) error {
	return a.Writer.Flush(ctx)
}

// Close flushes pending writes, then closes the backend
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.Writer.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to close writer: %w", err))
	}
	if err := a.KV.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	}
	return errors.Join(errs...)
}
