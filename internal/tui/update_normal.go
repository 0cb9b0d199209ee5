package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/tui/state"
)

// updateNormal handles keys in normal (navigation) mode
func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.startAdd()

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.currentTask(); ok {
			if _, ok := m.store.RequestDelete(task.ID); ok {
				m.uiState.SetMode(state.DeleteConfirmMode)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.currentTask(); ok {
			m.store.ToggleComplete(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		m.setCategory(m.store.ActiveCategory().Other())
		return m, nil

	case key.Matches(msg, m.keys.Work):
		m.setCategory(models.CategoryWork)
		return m, nil

	case key.Matches(msg, m.keys.Travel):
		m.setCategory(models.CategoryTravel)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveDown(len(m.visibleTasks()))
		return m, nil
	}

	return m, nil
}

// startAdd focuses the input line with the saved new-task buffer
func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.input.Placeholder = "New " + m.store.ActiveCategory().Title() + " task"
	m.input.SetValue(m.store.Input())
	m.input.CursorEnd()
	m.uiState.SetMode(state.AddMode)
	return m, m.input.Focus()
}

// startEdit opens the inline editor on the selected task
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	if err := m.store.BeginEdit(task.ID); err != nil {
		m.logger.Warn("failed to begin edit", "id", task.ID, "error", err)
		return m, nil
	}

	edit, _ := m.store.Editing()
	m.input.Placeholder = ""
	m.input.SetValue(edit.Draft)
	m.input.CursorEnd()
	m.uiState.SetMode(state.EditMode)
	return m, m.input.Focus()
}

// updateHelp leaves the help screen
func (m Model) updateHelp(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help, m.keys.Quit, m.keys.Cancel, m.keys.Submit):
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
