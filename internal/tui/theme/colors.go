package theme

import "github.com/thenoetrevino/twodo/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Title      string
	Subtle     string
	Normal     string
	Complete   string
	Delete     string
	Selected   string
	SelectedBg string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Highlight = scheme.Accent
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Complete = scheme.Complete
	Delete = scheme.Delete
	Selected = scheme.Selected
	SelectedBg = scheme.SelectedBg
}
