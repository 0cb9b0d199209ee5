package config

// KeyMappings defines all configurable key bindings.
// Each value may list several keys separated by commas, e.g. "space,x".
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`

	// Lists
	SwitchCategory string `yaml:"switch_category"`
	WorkList       string `yaml:"work_list"`
	TravelList     string `yaml:"travel_list"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleTask: "space,x",

		SwitchCategory: "tab",
		WorkList:       "w",
		TravelList:     "t",

		PrevTask: "k,up",
		NextTask: "j,down",

		ShowHelp: "?",
		Quit:     "q,ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleTask, defaults.ToggleTask)
	fill(&k.SwitchCategory, defaults.SwitchCategory)
	fill(&k.WorkList, defaults.WorkList)
	fill(&k.TravelList, defaults.TravelList)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
