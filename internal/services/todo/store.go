// Package todo holds the two-list task state machine and keeps persistence in sync with it
package todo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/persist"
)

// Store owns the task collection, the active category, the new-task input buffer,
// the single edit buffer and a pending delete confirmation.
//
// Every mutation is applied in memory first and then handed to the Persister,
// so reads always see the latest state regardless of write completion.
// A Store is driven by one event loop and is not safe for concurrent use.
type Store struct {
	persister persist.Persister
	logger    *slog.Logger
	newID     IDGenerator

	tasksKey        string
	categoryKey     string
	defaultCategory models.Category

	tasks         *models.TaskCollection
	active        models.Category
	input         string
	edit          *models.EditState
	pendingDelete string
	loading       bool
}

// New creates an empty Store in the loading state.
// Call Restore or Load before presenting tasks.
func New(persister persist.Persister, opts ...Option) *Store {
	if persister == nil {
		persister = persist.Discard
	}
	s := &Store{
		persister:   persister,
		logger:      slog.Default(),
		newID:       newUUIDv7,
		tasksKey:    DefaultTasksKey,
		categoryKey: DefaultCategoryKey,
		tasks:       &models.TaskCollection{},
		active:      models.CategoryWork,
		loading:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Loading reports whether the initial load has not completed yet
func (s *Store) Loading() bool {
	return s.loading
}

// Keys returns the storage keys for the collection and the category
func (s *Store) Keys() (tasksKey, categoryKey string) {
	return s.tasksKey, s.categoryKey
}

// ============================================================================
// Reads
// ============================================================================

// ActiveCategory returns the category new tasks are added to and which is visible
func (s *Store) ActiveCategory() models.Category {
	return s.active
}

// Visible returns the tasks of the active category in insertion order
func (s *Store) Visible() []models.Task {
	return s.tasks.InCategory(s.active)
}

// VisibleIn returns the tasks of any category in insertion order
func (s *Store) VisibleIn(category models.Category) []models.Task {
	return s.tasks.InCategory(category)
}

// Tasks returns a copy of the whole collection
func (s *Store) Tasks() *models.TaskCollection {
	return s.tasks.Clone()
}

// Task returns the task with the given id
func (s *Store) Task(id string) (models.Task, bool) {
	return s.tasks.Get(id)
}

// ResolveID expands a unique id prefix to a full task id
func (s *Store) ResolveID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrTaskNotFound
	}
	if s.tasks.Has(prefix) {
		return prefix, nil
	}

	var match string
	for _, task := range s.tasks.All() {
		if strings.HasPrefix(task.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
			}
			match = task.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	return match, nil
}

// Editing returns the in-progress edit, if any
func (s *Store) Editing() (models.EditState, bool) {
	if s.edit == nil {
		return models.EditState{}, false
	}
	return *s.edit, true
}

// Input returns the new-task input buffer
func (s *Store) Input() string {
	return s.input
}

// PendingDelete returns the task awaiting delete confirmation, if any
func (s *Store) PendingDelete() (models.Task, bool) {
	if s.pendingDelete == "" {
		return models.Task{}, false
	}
	return s.tasks.Get(s.pendingDelete)
}

// ============================================================================
// Mutations
// ============================================================================

// SetCategory switches the active category, committing a pending edit first
func (s *Store) SetCategory(category models.Category) {
	if !category.Valid() {
		return
	}
	if s.commitPendingEdit() {
		s.saveTasks()
	}
	s.active = category
	s.saveCategory()
}

// SetInput replaces the new-task input buffer
func (s *Store) SetInput(text string) {
	s.input = text
}

// SubmitInput adds the input buffer as a task
func (s *Store) SubmitInput() (models.Task, bool) {
	return s.AddTask(s.input)
}

// AddTask appends a task with the trimmed text to the active category.
// Blank text is ignored and leaves the input buffer untouched.
func (s *Store) AddTask(text string) (models.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, false
	}

	task := models.Task{
		ID:       s.uniqueID(),
		Text:     text,
		Category: s.active,
	}
	if err := s.tasks.Add(task); err != nil {
		s.logger.Error("failed to add task", "id", task.ID, "error", err)
		return models.Task{}, false
	}

	s.saveTasks()
	s.input = ""
	return task, true
}

// ToggleComplete commits a pending edit, then flips IsComplete on id.
// An unknown id changes nothing beyond the committed edit.
func (s *Store) ToggleComplete(id string) bool {
	committed := s.commitPendingEdit()
	toggled := s.tasks.Update(id, func(task *models.Task) {
		task.IsComplete = !task.IsComplete
	})
	if committed || toggled {
		s.saveTasks()
	}
	return toggled
}

// BeginEdit starts editing id with its current text as the draft.
// A different pending edit is committed first.
func (s *Store) BeginEdit(id string) error {
	task, ok := s.tasks.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if s.edit != nil && s.edit.TaskID == id {
		return nil
	}
	if s.commitPendingEdit() {
		s.saveTasks()
	}
	s.edit = &models.EditState{TaskID: id, Draft: task.Text}
	return nil
}

// UpdateDraft replaces the draft text of the current edit
func (s *Store) UpdateDraft(text string) bool {
	if s.edit == nil {
		return false
	}
	s.edit.Draft = text
	return true
}

// CommitEdit writes the draft into its task and ends the edit
func (s *Store) CommitEdit() bool {
	if !s.commitPendingEdit() {
		return false
	}
	s.saveTasks()
	return true
}

// CancelEdit ends the edit without writing the draft
func (s *Store) CancelEdit() bool {
	if s.edit == nil {
		return false
	}
	s.edit = nil
	return true
}

// RequestDelete starts the two-step deletion of id.
// Nothing is removed until ResolveDelete(true).
func (s *Store) RequestDelete(id string) (models.Task, bool) {
	task, ok := s.tasks.Get(id)
	if !ok {
		return models.Task{}, false
	}
	s.pendingDelete = id
	return task, true
}

// ResolveDelete finishes a pending deletion. confirmed=false leaves the collection untouched.
// It reports whether a task was removed.
func (s *Store) ResolveDelete(confirmed bool) bool {
	id := s.pendingDelete
	s.pendingDelete = ""
	if id == "" || !confirmed {
		return false
	}
	if !s.tasks.Remove(id) {
		return false
	}
	if s.edit != nil && s.edit.TaskID == id {
		s.edit = nil
	}
	s.saveTasks()
	return true
}

// ============================================================================
// Internals
// ============================================================================

// commitPendingEdit writes the draft into its task and clears the edit.
// It reports whether an edit was committed; the caller persists.
func (s *Store) commitPendingEdit() bool {
	if s.edit == nil {
		return false
	}
	edit := *s.edit
	s.edit = nil
	return s.tasks.Update(edit.TaskID, func(task *models.Task) {
		task.Text = edit.Draft
	})
}

// uniqueID draws ids until one is unused, falling back to UUIDv7
// if the configured generator keeps colliding
func (s *Store) uniqueID() string {
	for i := 0; i < 16; i++ {
		id := s.newID()
		if id != "" && !s.tasks.Has(id) {
			return id
		}
	}
	for {
		if id := newUUIDv7(); !s.tasks.Has(id) {
			return id
		}
	}
}

func (s *Store) saveTasks() {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Error("failed to encode tasks", "error", err)
		return
	}
	if err := s.persister.Save(s.tasksKey, string(data)); err != nil {
		s.logger.Error("failed to queue task write", "key", s.tasksKey, "error", err)
	}
}

func (s *Store) saveCategory() {
	data, err := json.Marshal(s.active)
	if err != nil {
		s.logger.Error("failed to encode category", "error", err)
		return
	}
	if err := s.persister.Save(s.categoryKey, string(data)); err != nil {
		s.logger.Error("failed to queue category write", "key", s.categoryKey, "error", err)
	}
}
