package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the select's keyboard bindings.
// Keys not bound here go to the search field while the popup is open.
type KeyMap struct {
	// Closed popup
	Open key.Binding

	// Open popup
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default select bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("↓/⏎", "open"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑↓", "move"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑↓", "move"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "choose"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
