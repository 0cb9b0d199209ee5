// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/twodo/internal/config/colors"
	"github.com/thenoetrevino/twodo/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle defines the appearance of titles
	TitleStyle lipgloss.Style

	// TaskStyle is an open task
	TaskStyle lipgloss.Style

	// CompletedTaskStyle is a finished task, struck through and faint
	CompletedTaskStyle lipgloss.Style

	// SelectedTaskStyle highlights the task under the cursor
	SelectedTaskStyle lipgloss.Style

	// CursorStyle renders the selection marker
	CursorStyle lipgloss.Style

	// CreateInputBoxStyle frames the new-task input line
	CreateInputBoxStyle lipgloss.Style

	// EditInputStyle frames the inline edit input
	EditInputStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// SubtleStyle is muted text for hints and empty states
	SubtleStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	CompletedTaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Complete)).
		Strikethrough(true).
		Faint(true)

	SelectedTaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Selected)).
		Background(lipgloss.Color(theme.SelectedBg))

	CursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Complete)).
		Padding(0, 1)

	EditInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		PaddingLeft(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}

func init() {
	// usable before the config is loaded, e.g. in tests
	InitStyles(*colors.Default())
}
