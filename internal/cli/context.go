package cli

import (
	"context"
	"errors"
)

// ErrNoCLI is returned when a command runs without an initialized CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

type contextKey struct{}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
