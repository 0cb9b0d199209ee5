package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddMode                       // Typing a new task into the input line
	EditMode                      // Editing the selected task inline
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

// String returns the mode name shown in logs and test failures
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case AddMode:
		return "add"
	case EditMode:
		return "edit"
	case DeleteConfirmMode:
		return "delete-confirm"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// Typing reports whether key presses go to the text input
func (m Mode) Typing() bool {
	return m == AddMode || m == EditMode
}

// UIState manages the user interface state.
// This includes the task selection, vertical scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedTask is the index of the selected task within the visible list
	selectedTask int

	// scrollOffset is the index of the first rendered task
	scrollOffset int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// MoveUp selects the previous task. Returns false at the top.
func (s *UIState) MoveUp() bool {
	if s.selectedTask <= 0 {
		return false
	}
	s.selectedTask--
	return true
}

// MoveDown selects the next task of count. Returns false at the bottom.
func (s *UIState) MoveDown(count int) bool {
	if s.selectedTask >= count-1 {
		return false
	}
	s.selectedTask++
	return true
}

// Clamp keeps the selection inside a list of count tasks.
// An empty list selects index 0.
func (s *UIState) Clamp(count int) {
	if s.selectedTask >= count {
		s.selectedTask = count - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
	if s.scrollOffset > s.selectedTask {
		s.scrollOffset = s.selectedTask
	}
}

// ScrollOffset returns the index of the first rendered task.
func (s *UIState) ScrollOffset() int {
	return s.scrollOffset
}

// EnsureVisible scrolls so the selection lies within rows rendered tasks.
func (s *UIState) EnsureVisible(rows int) {
	if rows < 1 {
		rows = 1
	}
	if s.selectedTask < s.scrollOffset {
		s.scrollOffset = s.selectedTask
	}
	if s.selectedTask >= s.scrollOffset+rows {
		s.scrollOffset = s.selectedTask - rows + 1
	}
}

// ResetSelection selects the first task and scrolls to the top.
func (s *UIState) ResetSelection() {
	s.selectedTask = 0
	s.scrollOffset = 0
}
