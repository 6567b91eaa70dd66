package ui

import "selectbox/internal/option"

// NavTarget is the component a Navigator drives.
type NavTarget interface {
	// Filtered returns the options currently visible, in navigation order.
	Filtered() option.List
	// Selected returns the committed option, if any.
	Selected() (option.Option, bool)
	// Commit applies a choice.
	Commit(option.Option)
}

// Navigator keeps the keyboard highlight, a transient cursor over the
// filtered list that is independent of the committed selection until confirmed.
type Navigator struct {
	highlight option.Option
	has       bool
}

// Highlighted returns the explicit highlight, if one is set.
func (n *Navigator) Highlighted() (option.Option, bool) {
	return n.highlight, n.has
}

// Reset clears the highlight.
func (n *Navigator) Reset() {
	n.highlight, n.has = option.Option{}, false
}

// Active returns the option shown as highlighted: the explicit highlight when
// it is still visible, otherwise the committed selection when visible.
func (n *Navigator) Active(t NavTarget) (option.Option, bool) {
	list := t.Filtered()
	if idx := n.position(t); idx >= 0 {
		return list[idx], true
	}
	return option.Option{}, false
}

// Next moves the highlight one row down, stopping at the last row.
func (n *Navigator) Next(t NavTarget) bool {
	return n.move(t, 1)
}

// Prev moves the highlight one row up, stopping at the first row.
func (n *Navigator) Prev(t NavTarget) bool {
	return n.move(t, -1)
}

// Confirm commits the active option. Returns false when nothing is active.
func (n *Navigator) Confirm(t NavTarget) bool {
	opt, ok := n.Active(t)
	if !ok {
		return false
	}
	t.Commit(opt)
	return true
}

func (n *Navigator) position(t NavTarget) int {
	list := t.Filtered()
	if n.has {
		if idx := list.IndexOf(n.highlight.ID); idx >= 0 {
			return idx
		}
	}
	if sel, ok := t.Selected(); ok {
		return list.IndexOf(sel.ID)
	}
	return -1
}

// move reports whether the highlighted option changed.
func (n *Navigator) move(t NavTarget, delta int) bool {
	list := t.Filtered()
	if len(list) == 0 {
		return false
	}
	idx := n.position(t)
	next := 0
	if idx >= 0 {
		next = min(max(idx+delta, 0), len(list)-1)
	}
	changed := !n.has || n.highlight.ID != list[next].ID
	n.highlight, n.has = list[next], true
	return changed
}
