package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/option"
)

// handleMouse maps clicks onto the widget. A click on the anchor toggles the
// popup, a click on an option commits it, and any other click while open is
// treated as a dismiss from outside the overlay.
func (s *Select) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X-s.originX, msg.Y-s.originY

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if s.popup.open && s.inPanel(x, y) {
			if msg.Button == tea.MouseButtonWheelUp {
				s.scrollOffset--
			} else {
				s.scrollOffset++
			}
			s.clampScroll()
		}
		return
	case tea.MouseButtonLeft:
	default:
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	switch {
	case s.inAnchor(x, y):
		if s.props.Disabled {
			s.log.Logf("disabled, ignoring anchor click")
			return
		}
		s.focused = true
		s.requestPopup(!s.popup.open)
	case s.popup.open && s.inPanel(x, y):
		if opt, ok := s.optionAt(y); ok {
			s.Commit(opt)
		}
	case s.popup.open:
		s.requestPopup(false)
	}
}

func (s *Select) inAnchor(x, y int) bool {
	return x >= 0 && x < s.props.Width && y >= 0 && y < s.layout().top
}

func (s *Select) inPanel(x, y int) bool {
	width := s.panelWidth
	if width <= 0 {
		width = s.props.Width
	}
	l := s.layout()
	bottom := l.top + lipglossHeight(s.renderPanel())
	return x >= 0 && x < width && y >= l.top && y < bottom
}

func (s *Select) optionAt(y int) (option.Option, bool) {
	l := s.layout()
	idx := l.visibleStart + (y - l.firstOption)
	if y < l.firstOption || idx >= l.visibleEnd {
		return option.Option{}, false
	}
	return s.store.filtered[idx], true
}
