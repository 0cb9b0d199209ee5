package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders a tab bar with the given tab names
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮ ╭────────╮                   2 open
//	│ Work │ │ Travel │────────────────────
//	 active   inactive
func RenderTabs(tabs []string, selectedIdx int, width int, summary string) string {
	renderedTabs := make([]string, 0, len(tabs))

	for i, tabName := range tabs {
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tabName))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tabName))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	// the summary sits on the gap line, right aligned
	summaryWidth := lipgloss.Width(summary)
	gapWidth := max(width-lipgloss.Width(row)-summaryWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if summary != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, SubtleStyle.Render(summary))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
