// Package launcher runs the interactive TUI
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/twodo/internal/app"
	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/tui"
)

// shutdownTimeout bounds the final flush of queued writes
const shutdownTimeout = 5 * time.Second

// Launch starts the TUI application and blocks until the user quits or ctx is cancelled.
// Queued writes are flushed before it returns.
func Launch(ctx context.Context, cfg *config.Config, opts ...app.Option) error {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	// flush with a fresh context; ctx may already be cancelled by a signal
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := application.Close(drainCtx); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	p := tea.NewProgram(tui.InitialModel(application), tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// the program stops itself on context cancellation
		<-errChan
	}

	return nil
}
