package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/option"
)

// ChangeMsg is sent once per committed selection.
type ChangeMsg struct {
	SelectID string // Props.ID of the sender
	Value    option.ID
	Option   option.Option
}

// PopupStateMsg is sent once per logical open/close transition.
type PopupStateMsg struct {
	SelectID string
	Open     bool
}

// focusSearchMsg moves focus to the search field one tick after opening.
// It is ignored when the popup has closed or reopened since, or the widget
// was disposed.
type focusSearchMsg struct {
	instance   int64
	generation int
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
