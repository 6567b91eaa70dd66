package ui

import tea "github.com/charmbracelet/bubbletea"

// PopupState is the open/closed state of the option overlay.
type PopupState int

const (
	PopupClosed PopupState = iota
	PopupOpen
)

func (p PopupState) String() string {
	if p == PopupOpen {
		return "open"
	}
	return "closed"
}

// popupController tracks the overlay's open flag. When controlled, open
// mirrors the caller's flag and user requests are only reported; the last
// request is remembered so the caller's confirming update does not report
// the same transition twice.
type popupController struct {
	open       bool
	controlled bool
	generation int // bumped on every opening

	pending    bool
	pendingFor bool
}

func (p *popupController) state() PopupState {
	if p.open {
		return PopupOpen
	}
	return PopupClosed
}

func (p *popupController) clearPending() {
	p.pending = false
}

// requestPopup handles transitions asked for by the user: anchor clicks,
// open/dismiss keys, outside clicks and commits.
func (s *Select) requestPopup(open bool) {
	if s.props.Disabled {
		s.log.Logf("disabled, suppressing popup %s", stateName(open))
		return
	}
	if s.popup.open == open {
		return
	}
	if !s.popup.controlled {
		s.setOpen(open)
		s.notifyPopup(open)
		return
	}
	// Every user action is a new request, even if an earlier one went
	// unanswered.
	s.popup.pending, s.popup.pendingFor = true, open
	s.log.Logf("requesting popup %s from caller", stateName(open))
	s.notifyPopup(open)
}

// mirrorPopup follows the caller's Open flag. An unchanged flag leaves a
// pending request unanswered. While disabled the flag can close the popup
// but not open it, and neither is reported.
func (s *Select) mirrorPopup(open bool) {
	if s.popup.open == open {
		return
	}
	if s.props.Disabled {
		s.popup.clearPending()
		if open {
			s.log.Logf("disabled, ignoring external open")
			return
		}
		s.setOpen(false)
		return
	}
	confirmed := s.popup.pending && s.popup.pendingFor == open
	s.popup.clearPending()
	s.setOpen(open)
	if !confirmed {
		s.notifyPopup(open)
	}
}

// setOpen flips the flag and runs the side effects of the transition.
func (s *Select) setOpen(open bool) {
	s.popup.open = open
	s.log.Logf("popup %s", stateName(open))
	if !open {
		s.nav.Reset()
		s.search.Blur()
		return
	}

	s.popup.generation++
	s.search.SetValue("")
	s.store.showAll()
	s.scrollActiveToTop()
	s.measureAnchor()
	if s.props.Search {
		s.emit(s.focusSearchCmd())
	}
}

func (s *Select) notifyPopup(open bool) {
	if s.props.OnPopupStateChange != nil {
		s.props.OnPopupStateChange(open)
	}
	s.emit(msgCmd(PopupStateMsg{SelectID: s.props.ID, Open: open}))
}

// focusSearchCmd defers focusing the search field to the next tick, after
// the popup has been laid out.
func (s *Select) focusSearchCmd() tea.Cmd {
	msg := focusSearchMsg{instance: s.instance, generation: s.popup.generation}
	return func() tea.Msg { return msg }
}

func (s *Select) handleFocusSearch(msg focusSearchMsg) {
	if msg.instance != s.instance {
		return
	}
	if s.disposed || !s.popup.open || msg.generation != s.popup.generation {
		s.log.Logf("stale search focus dropped")
		return
	}
	s.emit(s.search.Focus())
}

// measureAnchor sizes the popup panel to the anchor's rendered width.
func (s *Select) measureAnchor() {
	s.panelWidth = lipglossWidth(s.renderAnchor())
}

// scrollActiveToTop puts the highlighted or selected option on the first
// visible row.
func (s *Select) scrollActiveToTop() {
	s.scrollOffset = 0
	list := s.store.filtered
	if idx := s.nav.position(s); idx >= 0 {
		s.scrollOffset = min(idx, max(len(list)-s.props.MaxVisible, 0))
	}
}

// keepActiveVisible scrolls the least amount needed to show the highlight.
func (s *Select) keepActiveVisible() {
	idx := s.nav.position(s)
	if idx < 0 {
		return
	}
	if idx < s.scrollOffset {
		s.scrollOffset = idx
	}
	if idx >= s.scrollOffset+s.props.MaxVisible {
		s.scrollOffset = idx - s.props.MaxVisible + 1
	}
	s.clampScroll()
}

func (s *Select) clampScroll() {
	maxOffset := max(len(s.store.filtered)-s.props.MaxVisible, 0)
	s.scrollOffset = min(max(s.scrollOffset, 0), maxOffset)
}

func stateName(open bool) string {
	if open {
		return PopupOpen.String()
	}
	return PopupClosed.String()
}
