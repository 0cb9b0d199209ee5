package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (active tab, cursor, titles)
	Accent string `yaml:"accent"`

	// Task states
	Complete string `yaml:"complete"` // finished tasks, rendered faint and struck through
	Delete   string `yaml:"delete"`   // delete confirmation border

	// Selection
	Selected   string `yaml:"selected"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // muted/placeholder text and inactive tabs
	Normal string `yaml:"normal"`
}

// Presets lists the preset names accepted by GetPreset
var Presets = []string{"default", "monochrome", "wave"}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Complete, preset.Complete)
	fill(&c.Delete, preset.Delete)
	fill(&c.Selected, preset.Selected)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides c with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Complete, other.Complete)
	merge(&c.Delete, other.Delete)
	merge(&c.Selected, other.Selected)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
}
