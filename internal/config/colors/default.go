package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Complete: "#5FD75F",
		Delete:   "#FF0000",

		Selected:   "#D75FD7",
		SelectedBg: "#3A3A3A",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
