package persist

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/twodo/internal/database"
)

// SaveWithRetry writes value under key, making up to maxRetries attempts with
// exponential backoff starting at baseDelay. It returns the error from the final attempt.
func SaveWithRetry(ctx context.Context, store database.KVStore, key, value string, maxRetries int, baseDelay time.Duration) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := store.Set(ctx, key, value)
		if err == nil {
			if attempt > 0 {
				slog.Debug("write succeeded after retry",
					"attempt", attempt+1,
					"key", key)
			}
			return nil
		}

		lastErr = err

		// Don't sleep after the last attempt
		if attempt < maxRetries-1 {
			// 50ms, 100ms, 200ms with the default base
			delay := baseDelay * (1 << attempt)
			slog.Debug("write failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"key", key,
				"error", err)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}
