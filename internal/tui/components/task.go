package components

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// TaskProps describes one row of the task list
type TaskProps struct {
	Text     string
	Complete bool
	Selected bool
	Width    int

	// Editor replaces the text when the task is being edited
	Editor string
}

// RenderTask renders a single task as a checklist row
//
//	> [x] wrapped task text that runs
//	      onto a second line
//
// Long text wraps at Width; continuation lines align under the text.
func RenderTask(p TaskProps) string {
	cursor := "  "
	if p.Selected {
		cursor = CursorStyle.Render("> ")
	}

	box := "[ ] "
	if p.Complete {
		box = "[x] "
	}

	if p.Editor != "" {
		return cursor + box + EditInputStyle.Render(p.Editor)
	}

	wrapAt := max(p.Width-cursorWidth-checkboxWidth, minTaskTextWrap)
	lines := strings.Split(wordwrap.String(p.Text, wrapAt), "\n")

	style := TaskStyle
	if p.Complete {
		style = CompletedTaskStyle
	}
	if p.Selected {
		style = style.Inherit(SelectedTaskStyle)
	}

	indent := strings.Repeat(" ", cursorWidth+checkboxWidth)
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(cursor + box + style.Render(line))
			continue
		}
		b.WriteString("\n" + indent + style.Render(line))
	}
	return b.String()
}

// TaskHeight returns how many lines RenderTask uses for text at width
func TaskHeight(text string, width int) int {
	wrapAt := max(width-cursorWidth-checkboxWidth, minTaskTextWrap)
	return strings.Count(wordwrap.String(text, wrapAt), "\n") + 1
}
