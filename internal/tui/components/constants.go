package components

const (
	checkboxWidth   = 4  // "[x] "
	cursorWidth     = 2  // "> "
	minTaskTextWrap = 10 // narrowest wrap width for task text
)
