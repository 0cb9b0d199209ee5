package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/twodo/internal/app"
	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/database"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/services/todo"
	"github.com/thenoetrevino/twodo/internal/tui/components"
	"github.com/thenoetrevino/twodo/internal/tui/state"
)

// loadTimeout bounds the startup read from storage
const loadTimeout = 10 * time.Second

// loadedMsg carries the snapshot read by the startup load command
type loadedMsg struct {
	snapshot todo.Snapshot
	err      error
}

// Model represents the application state for the TUI.
// Pointer fields are shared between copies, so Update may use a value receiver.
type Model struct {
	store   *todo.Store
	kv      database.KVStore
	config  *config.Config
	logger  *slog.Logger
	uiState *state.UIState
	keys    KeyMap

	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	loadErr error
}

// InitialModel creates the TUI model for an App. Tasks are loaded by Init.
func InitialModel(a *app.App) Model {
	return New(a.Store, a.KV, a.Config, a.Logger)
}

// New creates a TUI model over store, loading from kv on Init
func New(store *todo.Store, kv database.KVStore, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New task"
	// no limit: the editor must hold any stored text unchanged
	input.CharLimit = 0

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		store:   store,
		kv:      kv,
		config:  cfg,
		logger:  logger,
		uiState: state.NewUIState(),
		keys:    NewKeyMap(cfg.KeyMappings),
		input:   input,
		spinner: s,
		help:    help.New(),
	}
}

// Init starts the spinner and the startup load
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTasks())
}

// loadTasks reads the saved snapshot off the update loop.
// The store itself is only touched when loadedMsg arrives.
func (m Model) loadTasks() tea.Cmd {
	kv := m.kv
	tasksKey, categoryKey := m.store.Keys()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := todo.LoadSnapshot(ctx, kv, tasksKey, categoryKey)
		return loadedMsg{snapshot: snap, err: err}
	}
}

// visibleTasks returns the tasks of the active category
func (m Model) visibleTasks() []models.Task {
	return m.store.Visible()
}

// currentTask returns the selected task, if any
func (m Model) currentTask() (models.Task, bool) {
	tasks := m.visibleTasks()
	idx := m.uiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// selectTask moves the selection to id within the visible list
func (m Model) selectTask(id string) {
	for i, task := range m.visibleTasks() {
		if task.ID == id {
			m.uiState.SetSelectedTask(i)
			return
		}
	}
}

// clampSelection keeps the selection inside the visible list
func (m Model) clampSelection() {
	m.uiState.Clamp(len(m.visibleTasks()))
}
