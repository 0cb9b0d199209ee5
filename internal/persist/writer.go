package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/twodo/internal/database"
)

// Defaults used by NewWriter when an option is not given
const (
	DefaultWriteTimeout = 5 * time.Second
	DefaultMaxRetries   = 3
	DefaultBaseDelay    = 50 * time.Millisecond
)

// WriterOption configures a Writer
type WriterOption func(*Writer)

// WithLogger sets the logger used for failed writes
func WithLogger(logger *slog.Logger) WriterOption {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithWriteTimeout bounds each write, retries included
func WithWriteTimeout(d time.Duration) WriterOption {
	return func(w *Writer) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// WithRetry sets the attempt count and initial backoff for each write
func WithRetry(maxRetries int, baseDelay time.Duration) WriterOption {
	return func(w *Writer) {
		w.maxRetries = maxRetries
		w.baseDelay = baseDelay
	}
}

// Writer queues writes to a KVStore and applies them on a background goroutine.
// Writes to the same key are coalesced: only the newest queued value is written.
type Writer struct {
	store      database.KVStore
	logger     *slog.Logger
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration

	mu      sync.Mutex
	pending map[string]string
	order   []string // pending keys in the order they were first queued
	closed  bool

	notify  chan struct{}
	flushes chan chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

// NewWriter creates a Writer for store and starts its goroutine.
// Call Close to flush queued writes and stop it.
func NewWriter(store database.KVStore, opts ...WriterOption) *Writer {
	w := &Writer{
		store:      store,
		logger:     slog.Default(),
		timeout:    DefaultWriteTimeout,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		pending:    make(map[string]string),
		notify:     make(chan struct{}, 1),
		flushes:    make(chan chan struct{}),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w
}

// Save queues value for key and returns immediately
func (w *Writer) Save(key, value string) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("dropping write after close", "key", key)
		return ErrWriterClosed
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	// non-blocking: one pending signal is enough to wake the goroutine
	select {
	case w.notify <- struct{}{}:
	default:
	}
	return nil
}

// Flush waits until every write queued before the call has been attempted
func (w *Writer) Flush(ctx context.Context) error {
	reply := make(chan struct{})
	select {
	case w.flushes <- reply:
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes queued writes and stops the goroutine. Later saves fail with ErrWriterClosed.
// The KVStore itself is left open.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.Flush(ctx)
	close(w.stop)

	select {
	case <-w.done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// run applies queued writes until stopped
func (w *Writer) run() {
	defer close(w.done)

	for {
		select {
		case <-w.stop:
			// Flush anything that raced with Close before exiting
			w.drain()
			return

		case <-w.notify:
			w.drain()

		case reply := <-w.flushes:
			w.drain()
			close(reply)
		}
	}
}

// drain writes pending values until none are left
func (w *Writer) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		value := w.pending[key]
		w.order = w.order[1:]
		delete(w.pending, key)
		w.mu.Unlock()

		w.write(key, value)
	}
}

// write applies one value, logging the final failure
func (w *Writer) write(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := SaveWithRetry(ctx, w.store, key, value, w.maxRetries, w.baseDelay); err != nil {
		w.logger.Error("failed to persist value",
			"key", key,
			"attempts", w.maxRetries,
			"error", err)
	}
}
