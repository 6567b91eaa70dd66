package theme

import "github.com/charmbracelet/lipgloss"

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Nord0  string // Polar Night
	Nord1  string
	Nord2  string
	Nord3  string
	Nord4  string // Snow Storm
	Nord6  string
	Nord8  string // Frost
	Nord10 string
	Nord14 string // Aurora
	Nord15 string
}{
	Nord0:  "#2E3440",
	Nord1:  "#3B4252",
	Nord2:  "#434C5E",
	Nord3:  "#4C566A",
	Nord4:  "#D8DEE9",
	Nord6:  "#ECEFF4",
	Nord8:  "#88C0D0",
	Nord10: "#5E81AC",
	Nord14: "#A3BE8C",
	Nord15: "#B48EAD",
}

// NordTheme implements Theme with the Nord palette.
type NordTheme struct{}

func (n NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord0, Dark: nord.Nord4}
}

func (n NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord3, Dark: nord.Nord3}
}

func (n NordTheme) Highlight() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord10, Dark: nord.Nord8}
}

func (n NordTheme) Selected() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#6d8a52", Dark: nord.Nord14}
}

func (n NordTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord4, Dark: nord.Nord1}
}

func (n NordTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord4, Dark: nord.Nord2}
}

func (n NordTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord10, Dark: nord.Nord15}
}

func (n NordTheme) Disabled() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord6, Dark: nord.Nord2}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
