// Package cli holds the plumbing shared by the twodo subcommands:
// the loaded application, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/twodo/internal/app"
	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App
}

// NewCLI builds the application for cfg and loads the saved tasks.
// A failed load is fatal here: a command writing over data it could not read would lose it.
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	if err := application.Load(ctx); err != nil {
		closeErr := application.Close(ctx)
		if closeErr != nil {
			err = fmt.Errorf("%w (close: %v)", err, closeErr)
		}
		return nil, Fail(ExitDataErr, "LOAD_ERROR", fmt.Errorf("failed to load saved tasks: %w", err)).
			WithSuggestion("Inspect the storage backend or move the damaged data aside")
	}

	return &CLI{App: application}, nil
}

// Store returns the loaded todo store
func (c *CLI) Store() *todo.Store {
	return c.App.Store
}

// Close flushes pending writes and releases the storage backend
func (c *CLI) Close(ctx context.Context) error {
	return c.App.Close(ctx)
}
