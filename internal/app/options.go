package app

import (
	"log/slog"

	"github.com/thenoetrevino/twodo/internal/database"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv        database.KVStore
	logger    *slog.Logger
	storeOpts []todo.Option
}

// WithKVStore uses kv instead of opening the configured backend.
// The App takes ownership and closes it.
func WithKVStore(kv database.KVStore) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStoreOptions passes extra options to the todo store
func WithStoreOptions(opts ...todo.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOpts = append(cfg.storeOpts, opts...)
	}
}
