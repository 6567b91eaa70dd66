package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"selectbox/internal/option"
	"selectbox/internal/ui/theme"
)

const (
	anchorArrow   = "▾"
	ellipsis      = "…"
	hintMoreAbove = "▲ more above"
	hintMoreBelow = "▼ more below"
	hintNoMatches = "No matches"
)

// panelLayout describes where rows of the open popup land, relative to the
// anchor's top-left cell.
type panelLayout struct {
	top          int // first row of the panel border
	firstOption  int // row of the first visible option
	visibleStart int // index into the filtered list
	visibleEnd   int // exclusive
	moreAbove    bool
	moreBelow    bool
}

func (s Select) layout() panelLayout {
	l := panelLayout{top: lipgloss.Height(s.renderAnchor())}
	l.firstOption = l.top + 1 // border
	if s.props.Search {
		l.firstOption++
	}
	l.visibleStart = s.scrollOffset
	l.visibleEnd = min(s.scrollOffset+s.props.MaxVisible, len(s.store.filtered))
	l.moreAbove = l.visibleStart > 0
	l.moreBelow = l.visibleEnd < len(s.store.filtered)
	if l.moreAbove {
		l.firstOption++
	}
	return l
}

// View implements tea.Model. The popup panel is attached below the anchor,
// left aligned.
func (s Select) View() string {
	anchor := s.renderAnchor()
	if !s.popup.open {
		return anchor
	}
	return lipgloss.JoinVertical(lipgloss.Left, anchor, s.renderPanel())
}

func (s Select) renderAnchor() string {
	text := s.props.Placeholder
	textStyle := styleSelectPlaceholder()
	if opt, ok := s.sel.get(); ok {
		text = opt.DisplayString
		textStyle = styleSelectValue()
	}

	box := styleSelectAnchor()
	switch {
	case s.props.Disabled:
		textStyle = styleSelectDisabled()
		box = box.BorderForeground(theme.Current().Disabled())
	case s.focused || s.popup.open:
		box = box.BorderForeground(theme.Current().BorderFocused())
	}

	// border + one space either side + arrow with its gap
	labelWidth := max(s.props.Width-6, 1)
	line := " " + textStyle.Render(fitLabel(text, labelWidth)) + " " + anchorArrow + " "
	return s.props.Style.Inherit(box.Width(s.props.Width - 2)).Render(line)
}

func (s Select) renderPanel() string {
	width := s.panelWidth
	if width <= 0 {
		width = s.props.Width
	}
	inner := max(width-4, 1) // border + padding
	l := s.layout()

	var b strings.Builder
	if s.props.Search {
		b.WriteString(s.search.View())
		b.WriteString("\n")
	}

	if len(s.store.filtered) == 0 {
		b.WriteString(styleSelectHint().Render(hintNoMatches))
	} else {
		if l.moreAbove {
			b.WriteString(styleSelectHint().Render(hintMoreAbove))
			b.WriteString("\n")
		}
		active, hasActive := s.nav.Active(&s)
		committed, hasCommitted := s.sel.get()
		for i := l.visibleStart; i < l.visibleEnd; i++ {
			opt := s.store.filtered[i]
			isActive := hasActive && opt.ID == active.ID
			isCommitted := hasCommitted && opt.ID == committed.ID
			b.WriteString(renderOptionRow(opt, inner, isActive, isCommitted))
			if i < l.visibleEnd-1 {
				b.WriteString("\n")
			}
		}
		if l.moreBelow {
			b.WriteString("\n")
			b.WriteString(styleSelectHint().Render(hintMoreBelow))
		}
	}

	return styleSelectPanel().Width(width - 2).Render(b.String())
}

func renderOptionRow(opt option.Option, width int, active, committed bool) string {
	marker := "  "
	if active {
		marker = "▸ "
	}
	suffix := ""
	if committed {
		suffix = " ✓"
	}
	labelWidth := max(width-ansi.StringWidth(marker)-ansi.StringWidth(suffix), 1)
	label := fitLabel(opt.DisplayString, labelWidth)
	row := marker + label + suffix

	switch {
	case active:
		return styleSelectHighlight().Width(width).Render(row)
	case committed:
		return styleSelectCommitted().Render(row)
	default:
		return styleSelectOption().Render(row)
	}
}

// fitLabel truncates to width cells and pads the remainder with spaces.
func fitLabel(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), ellipsis)
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}

func lipglossHeight(s string) int {
	return lipgloss.Height(s)
}

// Select styles

func styleSelectAnchor() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderNormal()).
		Foreground(theme.Current().Text())
}

func styleSelectValue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleSelectPlaceholder() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}

func styleSelectDisabled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Disabled())
}

func styleSelectPanel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderNormal()).
		Padding(0, 1)
}

func styleSelectOption() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleSelectHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Highlight()).
		Background(theme.Current().Surface()).
		Bold(true)
}

func styleSelectCommitted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Selected())
}

func styleSelectHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}
