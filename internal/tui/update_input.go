package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/twodo/internal/tui/state"
)

// updateAdd handles keys while typing a new task.
// The input stays focused after a submit so several tasks can be added in a row.
func (m Model) updateAdd(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.store.SetInput(m.input.Value())
		if task, ok := m.store.SubmitInput(); ok {
			m.input.SetValue(m.store.Input())
			m.selectTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		// the buffer survives so the next add resumes it
		m.store.SetInput(m.input.Value())
		m.input.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case msg.String() == "tab":
		m.store.SetInput(m.input.Value())
		m.setCategory(m.store.ActiveCategory().Other())
		m.input.Placeholder = "New " + m.store.ActiveCategory().Title() + " task"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInput(m.input.Value())
	return m, cmd
}

// updateEdit handles keys while editing a task inline
func (m Model) updateEdit(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.store.UpdateDraft(m.input.Value())
		m.store.CommitEdit()
		m.finishEdit()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.store.CancelEdit()
		m.finishEdit()
		return m, nil

	case msg.String() == "tab":
		// switching lists commits the draft
		m.store.UpdateDraft(m.input.Value())
		m.setCategory(m.store.ActiveCategory().Other())
		m.finishEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.UpdateDraft(m.input.Value())
	return m, cmd
}

// finishEdit returns to normal mode with an empty, blurred input
func (m *Model) finishEdit() {
	m.input.Blur()
	m.input.Reset()
	m.uiState.SetMode(state.NormalMode)
	m.clampSelection()
}

// updateDeleteConfirm resolves a pending delete with y or n
func (m Model) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.store.ResolveDelete(true)
	case key.Matches(msg, m.keys.Decline):
		m.store.ResolveDelete(false)
	default:
		return m, nil
	}

	m.uiState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, nil
}
