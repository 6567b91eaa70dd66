// Package theme provides the semantic color system for the select widget.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the select widget renders with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Text() lipgloss.AdaptiveColor      // Anchor value and option labels
	TextMuted() lipgloss.AdaptiveColor // Placeholder, hints, "No matches"
	Highlight() lipgloss.AdaptiveColor // Keyboard highlight cursor
	Selected() lipgloss.AdaptiveColor  // Committed selection marker
	Surface() lipgloss.AdaptiveColor   // Highlighted row background

	BorderNormal() lipgloss.AdaptiveColor  // Anchor and panel borders
	BorderFocused() lipgloss.AdaptiveColor // Anchor border while focused or open
	Disabled() lipgloss.AdaptiveColor      // Anchor text and border when disabled
}
