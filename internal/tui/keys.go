package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shared by the prompts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Enter  key.Binding // Confirm choice or input
	Escape key.Binding // Cancel the prompt
	Quit   key.Binding // Cancel the prompt
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// InputKeyMap returns bindings for text prompts, where letters must reach the input.
func InputKeyMap() KeyMap {
	k := DefaultKeyMap()
	k.Up = key.NewBinding(key.WithDisabled())
	k.Down = key.NewBinding(key.WithDisabled())
	k.Top = key.NewBinding(key.WithDisabled())
	k.Bottom = key.NewBinding(key.WithDisabled())
	return k
}

// ShortHelp returns the bindings shown under a selection prompt.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Escape}
}
