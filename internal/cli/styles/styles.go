// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/twodo/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	CompleteStyle lipgloss.Style
	SuccessStyle  lipgloss.Style
	WarningStyle  lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	CompleteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Complete)).
		Strikethrough(true)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Complete))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Delete))
}
