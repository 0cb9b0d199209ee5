package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/twodo/internal/config"
)

// KeyMap holds the bindings for normal mode, built from config.KeyMappings.
// It implements help.KeyMap.
type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding

	Switch key.Binding
	Work   key.Binding
	Travel key.Binding

	Up   key.Binding
	Down key.Binding

	Help key.Binding
	Quit key.Binding

	// Fixed keys used while typing and confirming
	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Decline key.Binding
}

// NewKeyMap builds the key map from configured mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add:    binding(km.AddTask, "add task"),
		Edit:   binding(km.EditTask, "edit task"),
		Delete: binding(km.DeleteTask, "delete task"),
		Toggle: binding(km.ToggleTask, "toggle done"),

		Switch: binding(km.SwitchCategory, "switch list"),
		Work:   binding(km.WorkList, "work list"),
		Travel: binding(km.TravelList, "travel list"),

		Up:   binding(km.PrevTask, "up"),
		Down: binding(km.NextTask, "down"),

		Help: binding(km.ShowHelp, "help"),
		Quit: binding(km.Quit, "quit"),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Decline: key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// binding turns a comma separated key list into a binding
func binding(keys, desc string) key.Binding {
	parsed := splitKeys(keys)
	return key.NewBinding(
		key.WithKeys(parsed...),
		key.WithHelp(strings.Join(parsed, "/"), desc),
	)
}

// splitKeys splits "space,x" into ["space" "x"]. A literal space means "space".
func splitKeys(keys string) []string {
	var out []string
	for _, k := range strings.Split(keys, ",") {
		if k == " " {
			out = append(out, "space")
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ShortHelp is shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.Switch, k.Help, k.Quit}
}

// FullHelp is shown on the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Switch, k.Work, k.Travel},
		{k.Up, k.Down},
		{k.Submit, k.Cancel, k.Help, k.Quit},
	}
}

// typingHelp is shown in the status bar while the input is focused
func (k KeyMap) typingHelp() []key.Binding {
	return []key.Binding{
		k.Submit,
		k.Cancel,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
	}
}
