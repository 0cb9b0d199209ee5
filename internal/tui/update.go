package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.scrollToSelection()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load saved tasks", "error", msg.err)
			m.loadErr = msg.err
		}
		m.store.Restore(msg.snapshot)
		m.uiState.ResetSelection()
		m.clampSelection()
		return m, nil

	case spinner.TickMsg:
		if !m.store.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		next, cmd := m.handleKey(msg)
		m.scrollToSelection()
		return next, cmd
	}

	// cursor blink and other input internals
	if m.uiState.Mode().Typing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the handler for the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// only quitting is possible until the tasks are loaded
	if m.store.Loading() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.AddMode:
		return m.updateAdd(msg)
	case state.EditMode:
		return m.updateEdit(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	case state.HelpMode:
		return m.updateHelp(msg)
	default:
		return m.updateNormal(msg)
	}
}

// setCategory switches lists and resets the selection
func (m Model) setCategory(category models.Category) {
	if category == m.store.ActiveCategory() {
		return
	}
	m.store.SetCategory(category)
	m.uiState.ResetSelection()
	m.clampSelection()
}

// scrollToSelection keeps the selected task inside the rendered window
func (m Model) scrollToSelection() {
	tasks := m.visibleTasks()
	rows := max(m.uiState.Height()-chromeLines, 1)
	m.uiState.EnsureVisible(m.rowsThatFit(tasks, rows))
}
