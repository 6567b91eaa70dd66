package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/ui/theme"
)

// FooterHint is a key hint shown in a footer bar.
type FooterHint struct {
	Key  string // short symbol: "↑↓", "⏎", "esc"
	Desc string
}

// HintsFor turns enabled bindings into footer hints using their help text.
// Bindings sharing a help key are listed once.
func HintsFor(bindings ...key.Binding) []FooterHint {
	hints := make([]FooterHint, 0, len(bindings))
	seen := map[string]bool{}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		hints = append(hints, FooterHint{Key: h.Key, Desc: h.Desc})
	}
	return hints
}

// RenderFooter renders hints as pills. When width is positive, hints are
// dropped from the end until the bar fits.
func RenderFooter(hints []FooterHint, width int) string {
	if width > 0 {
		for len(hints) > 0 && renderHintsWidth(hints) > width {
			hints = hints[:len(hints)-1]
		}
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}

// HelpBindings returns the bindings that apply in the current popup state.
func (s Select) HelpBindings() []key.Binding {
	if s.props.Disabled {
		return nil
	}
	if !s.popup.open {
		return []key.Binding{s.keys.Open}
	}
	return []key.Binding{s.keys.Next, s.keys.Prev, s.keys.Confirm, s.keys.Dismiss}
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []FooterHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.Key, h.Desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Surface()).
		Foreground(theme.Current().Highlight()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}
