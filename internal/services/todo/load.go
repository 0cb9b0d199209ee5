package todo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/twodo/internal/database"
	"github.com/thenoetrevino/twodo/internal/models"
)

// Snapshot is the persisted state read at startup
type Snapshot struct {
	Tasks    *models.TaskCollection
	Category models.Category

	// HasCategory is false when no category was stored or it could not be decoded
	HasCategory bool
}

// LoadSnapshot reads the collection and the active category from kv.
// Missing keys yield an empty collection and no category. Read and decode
// failures are joined into the returned error, but the snapshot is always usable.
func LoadSnapshot(ctx context.Context, kv database.KVStore, tasksKey, categoryKey string) (Snapshot, error) {
	snap := Snapshot{Tasks: &models.TaskCollection{}}
	var errs []error

	raw, ok, err := kv.Get(ctx, tasksKey)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("failed to read %s: %w", tasksKey, err))
	case ok && strings.TrimSpace(raw) != "":
		tasks := &models.TaskCollection{}
		if err := json.Unmarshal([]byte(raw), tasks); err != nil {
			errs = append(errs, fmt.Errorf("failed to decode %s: %w", tasksKey, err))
		} else {
			snap.Tasks = tasks
		}
	}

	raw, ok, err = kv.Get(ctx, categoryKey)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("failed to read %s: %w", categoryKey, err))
	case ok && strings.TrimSpace(raw) != "" && strings.TrimSpace(raw) != "null":
		var category models.Category
		if err := json.Unmarshal([]byte(raw), &category); err != nil {
			errs = append(errs, fmt.Errorf("failed to decode %s: %w", categoryKey, err))
		} else {
			snap.Category = category
			snap.HasCategory = true
		}
	}

	return snap, errors.Join(errs...)
}

// Restore replaces the in-memory state with snap and ends the loading state.
// Nothing is written back.
func (s *Store) Restore(snap Snapshot) {
	if snap.Tasks != nil {
		s.tasks = snap.Tasks.Clone()
	} else {
		s.tasks = &models.TaskCollection{}
	}

	s.active = s.defaultCategory
	if snap.HasCategory && snap.Category.Valid() {
		s.active = snap.Category
	}

	s.edit = nil
	s.pendingDelete = ""
	s.loading = false
}

// Load reads the store's keys from kv and restores them.
// Failures are logged and whatever decoded is kept, so the returned error is informational.
func (s *Store) Load(ctx context.Context, kv database.KVStore) error {
	snap, err := LoadSnapshot(ctx, kv, s.tasksKey, s.categoryKey)
	if err != nil {
		s.logger.Error("failed to load saved tasks", "error", err)
	}
	s.Restore(snap)
	s.logger.Debug("tasks loaded",
		"count", s.tasks.Len(),
		"category", s.active.String())
	return err
}
