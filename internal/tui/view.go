package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/tui/components"
	"github.com/thenoetrevino/twodo/internal/tui/state"
	"github.com/thenoetrevino/twodo/internal/tui/theme"
)

// chromeLines is the height of everything except the task list:
// tabs (3), input box (3), blank line, status bar
const chromeLines = 8

// View renders the current state of the application.
// Required by tea.Model interface
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.store.Loading() {
		view.Content = lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading tasks...",
		)
		return view
	}

	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		view.Content = m.viewDeleteConfirm()
	case state.HelpMode:
		view.Content = m.viewHelp()
	default:
		view.Content = m.viewLists()
	}
	return view
}

// viewLists renders the tab bar, the input line, the visible tasks and the status bar
func (m Model) viewLists() string {
	width := m.uiState.Width()
	active := m.store.ActiveCategory()

	titles := make([]string, len(models.Categories))
	selected := 0
	for i, category := range models.Categories {
		titles[i] = category.Title()
		if category == active {
			selected = i
		}
	}

	tasks := m.visibleTasks()
	tabs := components.RenderTabs(titles, selected, width, summarize(tasks))

	sections := []string{tabs, m.viewInput(), m.viewTasks(tasks), m.viewStatusBar()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// summarize counts open and finished tasks, e.g. "2 open · 1 done"
func summarize(tasks []models.Task) string {
	done := 0
	for _, task := range tasks {
		if task.IsComplete {
			done++
		}
	}
	return fmt.Sprintf("%d open · %d done", len(tasks)-done, done)
}

// viewInput renders the new-task line; focused only in add mode
func (m Model) viewInput() string {
	boxWidth := max(m.uiState.Width()-4, 10)
	if m.uiState.Mode() == state.AddMode {
		return components.CreateInputBoxStyle.Width(boxWidth).Render(m.input.View())
	}

	hint := fmt.Sprintf("press %s to add a %s task", m.keys.Add.Help().Key, strings.ToLower(m.store.ActiveCategory().Title()))
	if draft := m.store.Input(); draft != "" {
		hint = "draft: " + draft
	}
	return components.CreateInputBoxStyle.
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Width(boxWidth).
		Render(components.SubtleStyle.Render(hint))
}

// viewTasks renders the scrolled window of visible tasks
func (m Model) viewTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "\n" + components.SubtleStyle.Render("  No tasks yet") + "\n"
	}

	width := m.uiState.Width()
	rows := max(m.uiState.Height()-chromeLines, 1)

	edit, editing := m.store.Editing()
	selected := m.uiState.SelectedTask()

	var lines []string
	used := 0
	for i := m.uiState.ScrollOffset(); i < len(tasks); i++ {
		task := tasks[i]
		props := components.TaskProps{
			Text:     task.Text,
			Complete: task.IsComplete,
			Selected: i == selected,
			Width:    width,
		}
		if editing && m.uiState.Mode() == state.EditMode && edit.TaskID == task.ID {
			props.Editor = m.input.View()
		}

		height := components.TaskHeight(task.Text, width)
		if used > 0 && used+height > rows {
			break
		}
		lines = append(lines, components.RenderTask(props))
		used += height
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// rowsThatFit counts how many tasks ending at the selection fit in rows lines
func (m Model) rowsThatFit(tasks []models.Task, rows int) int {
	width := m.uiState.Width()
	if width == 0 {
		return len(tasks)
	}
	count, used := 0, 0
	for i := m.uiState.SelectedTask(); i >= 0 && i < len(tasks); i-- {
		used += components.TaskHeight(tasks[i].Text, width)
		if count > 0 && used > rows {
			break
		}
		count++
	}
	return max(count, 1)
}

// viewStatusBar renders the app name and context sensitive key help
func (m Model) viewStatusBar() string {
	bindings := m.keys.ShortHelp()
	if m.uiState.Mode().Typing() {
		bindings = m.keys.typingHelp()
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.uiState.Width(),
		Left:  "twodo",
		Right: m.help.ShortHelpView(bindings),
	})
}

// viewDeleteConfirm renders the task deletion confirmation dialog
func (m Model) viewDeleteConfirm() string {
	task, ok := m.store.PendingDelete()
	if !ok {
		return m.viewLists()
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", task.Text))

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		confirmBox,
	)
}

// viewHelp renders the full key list
func (m Model) viewHelp() string {
	title := components.TitleStyle.Render("twodo keys")
	body := m.help.FullHelpView(m.keys.FullHelp())

	box := components.HelpBoxStyle.Render(title + "\n\n" + body)
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
