package theme

import "github.com/charmbracelet/lipgloss"

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Green       string
	Purple      string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Cyan:        "#8be9fd",
	Green:       "#50fa7b",
	Purple:      "#bd93f9",
}

// DraculaTheme implements Theme with the Dracula color palette.
type DraculaTheme struct{}

func (d DraculaTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: dracula.Background, Dark: dracula.Foreground}
}

func (d DraculaTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#757575", Dark: dracula.Comment}
}

func (d DraculaTheme) Highlight() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: dracula.Purple}
}

func (d DraculaTheme) Selected() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#388e3c", Dark: dracula.Green}
}

func (d DraculaTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: dracula.CurrentLine}
}

func (d DraculaTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: dracula.Comment}
}

func (d DraculaTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0097a7", Dark: dracula.Cyan}
}

func (d DraculaTheme) Disabled() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#cccccc", Dark: dracula.CurrentLine}
}

func init() {
	RegisterTheme("dracula", DraculaTheme{})
}
