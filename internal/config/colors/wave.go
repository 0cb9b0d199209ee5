package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: "#957FB8", // oniViolet

		Complete: "#98BB6C", // springGreen
		Delete:   "#FF5D62", // peachRed

		Selected:   "#7AA89F", // waveAqua2
		SelectedBg: "#223249", // waveBlue1

		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite
	}
}
