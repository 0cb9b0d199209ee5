package todo

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/twodo/internal/models"
)

// Default storage keys, kept compatible with data written by the original app
const (
	DefaultTasksKey    = "todoList"
	DefaultCategoryKey = "lastMove"
)

// IDGenerator returns a new unique task id
type IDGenerator func() string

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the default UUIDv7 generator
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithKeys sets the storage keys for the task collection and the active category
func WithKeys(tasksKey, categoryKey string) Option {
	return func(s *Store) {
		if tasksKey != "" {
			s.tasksKey = tasksKey
		}
		if categoryKey != "" {
			s.categoryKey = categoryKey
		}
	}
}

// WithDefaultCategory sets the category used before loading and when none is stored
func WithDefaultCategory(category models.Category) Option {
	return func(s *Store) {
		if category.Valid() {
			s.defaultCategory = category
			s.active = category
		}
	}
}

// newUUIDv7 returns a time-ordered UUID, falling back to a random one
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
