package ui

import "selectbox/internal/option"

// Mode says who owns a piece of widget state.
type Mode int

const (
	// Uncontrolled - the widget owns the state.
	Uncontrolled Mode = iota
	// Controlled - the caller owns the state through props.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Resolve returns the first option whose ID equals id. An undefined id
// never resolves.
func Resolve(options option.List, id option.ID) (option.Option, bool) {
	return options.Find(id)
}

// selection caches the committed option. It is only authoritative while the
// widget is uncontrolled; in controlled mode it mirrors the last resolved value.
type selection struct {
	current option.Option
	has     bool
}

func newSelection(options option.List, value option.ID) selection {
	opt, ok := Resolve(options, value)
	return selection{current: opt, has: ok}
}

func (s selection) get() (option.Option, bool) {
	return s.current, s.has
}

// sync re-resolves a defined value against the current options. Without
// one the widget owns the selection, and it stays as the user last chose it
// even if the list no longer holds that option.
func (s *selection) sync(options option.List, value option.ID) {
	if value.IsZero() {
		return
	}
	s.current, s.has = Resolve(options, value)
}

// commit records a user choice. Controlled selections wait for the caller.
func (s *selection) commit(opt option.Option, mode Mode) {
	if mode == Uncontrolled {
		s.current, s.has = opt, true
	}
}
