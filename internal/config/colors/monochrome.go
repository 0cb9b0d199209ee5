package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Complete: "#808080",
		Delete:   "#FFFFFF",

		Selected:   "#FFFFFF",
		SelectedBg: "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
