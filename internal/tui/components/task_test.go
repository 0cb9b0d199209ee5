package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderTask(t *testing.T) {
	tests := []struct {
		name     string
		props    TaskProps
		wantText []string
		skipText []string
	}{
		{
			name:     "open task",
			props:    TaskProps{Text: "Buy milk", Width: 40},
			wantText: []string{"[ ]", "Buy milk"},
			skipText: []string{"[x]", ">"},
		},
		{
			name:     "completed task",
			props:    TaskProps{Text: "Buy milk", Complete: true, Width: 40},
			wantText: []string{"[x]", "Buy milk"},
		},
		{
			name:     "selected task",
			props:    TaskProps{Text: "Buy milk", Selected: true, Width: 40},
			wantText: []string{">", "Buy milk"},
		},
		{
			name:     "editor replaces text",
			props:    TaskProps{Text: "Buy milk", Editor: "Buy oat milk", Width: 40},
			wantText: []string{"Buy oat milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// styles may be applied per rune, so compare the visible text
			result := ansi.Strip(RenderTask(tt.props))
			for _, want := range tt.wantText {
				if !strings.Contains(result, want) {
					t.Errorf("RenderTask() = %q, want to contain %q", result, want)
				}
			}
			for _, skip := range tt.skipText {
				if strings.Contains(result, skip) {
					t.Errorf("RenderTask() = %q, should not contain %q", result, skip)
				}
			}
		})
	}
}

func TestRenderTask_Wraps(t *testing.T) {
	text := "pack the charger and the adapter and the spare cable"
	result := RenderTask(TaskProps{Text: text, Width: 26})

	lines := strings.Split(result, "\n")
	if len(lines) < 2 {
		t.Fatalf("RenderTask() produced %d lines, want wrapping", len(lines))
	}
	if len(lines) != TaskHeight(text, 26) {
		t.Errorf("line count = %d, TaskHeight = %d", len(lines), TaskHeight(text, 26))
	}
	indent := strings.Repeat(" ", cursorWidth+checkboxWidth)
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, indent) {
			t.Errorf("continuation line %q is not indented under the text", line)
		}
	}
}

func TestTaskHeight(t *testing.T) {
	if got := TaskHeight("short", 80); got != 1 {
		t.Errorf("TaskHeight(short) = %d, want 1", got)
	}
	// narrow widths still wrap at the minimum
	if got := TaskHeight("a b c d e f g h i j k l", 1); got < 2 {
		t.Errorf("TaskHeight at width 1 = %d, want at least 2", got)
	}
}

func TestRenderTabs(t *testing.T) {
	result := RenderTabs([]string{"Work", "Travel"}, 1, 60, "2 open")

	for _, want := range []string{"Work", "Travel", "2 open"} {
		if !strings.Contains(result, want) {
			t.Errorf("RenderTabs() missing %q", want)
		}
	}
	if w := lipgloss.Width(result); w > 60 {
		t.Errorf("RenderTabs() width = %d, want at most 60", w)
	}
}

func TestRenderStatusBar(t *testing.T) {
	result := RenderStatusBar(StatusBarProps{Width: 40, Left: "left", Right: "right"})

	if !strings.Contains(result, "left") || !strings.Contains(result, "right") {
		t.Errorf("RenderStatusBar() = %q, want both sides", result)
	}
	if strings.Index(result, "left") > strings.Index(result, "right") {
		t.Error("left text rendered after right text")
	}
}
