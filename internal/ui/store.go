package ui

import "selectbox/internal/option"

// optionStore holds the authoritative option list and the subset currently
// visible after filtering. Both are replaced wholesale.
type optionStore struct {
	all      option.List
	filtered option.List
}

func (s *optionStore) reset(all option.List) {
	s.all = all
	s.filtered = all
}

func (s *optionStore) showAll() {
	s.filtered = s.all
}

// sameList reports whether two lists share the same backing array.
func sameList(a, b option.List) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
