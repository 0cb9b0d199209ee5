package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := StatusBarStyle.Render(props.Left)
	rightRendered := StatusBarStyle.Render(props.Right)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
