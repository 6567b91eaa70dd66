package ui

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/debug"
	"selectbox/internal/option"
)

const (
	// DefaultPlaceholder is shown on the anchor when nothing is selected.
	DefaultPlaceholder = "Select..."

	defaultWidth      = 32
	defaultMaxVisible = 8
	minWidth          = 8
	searchPlaceholder = "Search ..."
)

var lastInstance int64

// Props configure a Select. Value and Open are optional: leaving them unset
// lets the widget own that state, setting them hands ownership to the caller.
type Props struct {
	// Options are indexed for search when first seen. Passing a new slice,
	// or the same one with changed labels, rebuilds the index.
	Options option.List
	Value   option.ID // zero = uncontrolled selection
	Open    *bool     // nil = uncontrolled popup

	Disabled    bool
	Placeholder string // default "Select..."
	Search      bool

	OnChange           func(id option.ID, opt option.Option)
	OnPopupStateChange func(open bool)

	ID    string         // identifies the widget in messages and logs
	Style lipgloss.Style // layered over the anchor style

	Width      int // anchor width in cells, borders included
	MaxVisible int // option rows shown at once
	Filter     FilterConfig
	NewMatcher MatcherFactory // nil = fuzzy default; only read by New
}

// OpenFlag returns a pointer suitable for Props.Open.
func OpenFlag(open bool) *bool {
	return &open
}

func (p Props) withDefaults() Props {
	if p.Placeholder == "" {
		p.Placeholder = DefaultPlaceholder
	}
	if p.Width <= 0 {
		p.Width = defaultWidth
	}
	if p.Width < minWidth {
		p.Width = minWidth
	}
	if p.MaxVisible <= 0 {
		p.MaxVisible = defaultMaxVisible
	}
	return p
}

// Select is a single-select dropdown. It follows the Bubble Tea value
// model: Update and SetProps return the next state.
type Select struct {
	props    Props
	keys     KeyMap
	instance int64
	log      debug.Scope

	store  optionStore
	filter *FilterAdapter
	sel    selection
	popup  popupController
	nav    Navigator
	search textinput.Model

	focused  bool
	disposed bool

	scrollOffset int // first visible row in the filtered list
	panelWidth   int // measured anchor width
	originX      int // screen position of the anchor, for mouse hits
	originY      int

	cmds []tea.Cmd
}

// New builds a Select from props. Options must all carry an ID and a
// display string.
func New(props Props) (Select, error) {
	props = props.withDefaults()
	if err := option.Validate(props.Options); err != nil {
		return Select{}, err
	}

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 100

	s := Select{
		props:    props,
		keys:     DefaultKeyMap(),
		instance: atomic.AddInt64(&lastInstance, 1),
		filter:   NewFilterAdapter(props.NewMatcher, props.Filter).Rebuild(props.Options),
		sel:      newSelection(props.Options, props.Value),
		search:   ti,
	}
	s.log = debug.Scope("select[" + props.ID + "]")
	s.store.reset(props.Options)
	s.sizeSearch()

	if props.Open != nil {
		s.popup.controlled = true
		if *props.Open && !props.Disabled {
			s.setOpen(true)
		}
	}
	// The initial state is not a transition, so nothing has notified.
	s.log.Logf("created with %d options (%s selection, %s popup)", len(props.Options), s.Mode(), s.PopupMode())
	return s, nil
}

// WithKeyMap replaces the key bindings.
func (s Select) WithKeyMap(k KeyMap) Select {
	s.keys = k
	return s
}

// Init implements tea.Model. It returns work scheduled during construction,
// such as focusing the search field of a select created open.
func (s Select) Init() tea.Cmd {
	return tea.Batch(s.cmds...)
}

// SetProps applies new props from the caller: the search index is rebuilt
// when the option list changes, a defined Value is re-resolved and a
// defined Open is mirrored. The receiver is not modified.
func (s Select) SetProps(props Props) (Select, tea.Cmd) {
	s.cmds = nil
	props = props.withDefaults()
	s.props = props
	s.log = debug.Scope("select[" + props.ID + "]")
	s.sizeSearch()

	refilter := false
	if !s.filter.Indexes(props.Options) {
		s.filter = s.filter.Rebuild(props.Options)
		s.store.all = props.Options
		refilter = true
		s.log.Logf("options replaced (%d), index rebuilt", len(props.Options))
	}
	if props.Filter != s.filter.Config() {
		s.filter = s.filter.WithConfig(props.Filter)
		refilter = true
	}
	if refilter {
		s.applySearch(s.search.Value())
	}
	s.sel.sync(props.Options, props.Value)

	if props.Open != nil {
		s.popup.controlled = true
		s.mirrorPopup(*props.Open)
	} else {
		s.popup.controlled = false
		s.popup.clearPending()
	}
	return s, s.flush()
}

// Props returns the props currently in effect, defaults applied.
func (s Select) Props() Props {
	return s.props
}

// Update implements tea.Model.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	s.cmds = nil
	switch msg := msg.(type) {
	case focusSearchMsg:
		s.handleFocusSearch(msg)
	case tea.WindowSizeMsg:
		if s.popup.open {
			s.measureAnchor()
		}
	case tea.MouseMsg:
		s.handleMouse(msg)
	case tea.KeyMsg:
		if s.focused {
			s.handleKey(msg)
		}
	default:
		if s.props.Search && s.popup.open {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			s.emit(cmd)
		}
	}
	return s, s.flush()
}

func (s *Select) handleKey(msg tea.KeyMsg) {
	if s.props.Disabled {
		s.log.Logf("disabled, ignoring key %s", msg.String())
		return
	}
	if !s.popup.open {
		if key.Matches(msg, s.keys.Open) {
			s.requestPopup(true)
		}
		return
	}

	switch {
	case key.Matches(msg, s.keys.Dismiss):
		s.requestPopup(false)
	case key.Matches(msg, s.keys.Next):
		if s.nav.Next(s) {
			s.keepActiveVisible()
		}
	case key.Matches(msg, s.keys.Prev):
		if s.nav.Prev(s) {
			s.keepActiveVisible()
		}
	case key.Matches(msg, s.keys.Confirm):
		s.nav.Confirm(s)
	default:
		s.typeIntoSearch(msg)
	}
}

// typeIntoSearch forwards a key to the search field and re-filters in the
// same event, so a following navigation key sees the new list.
func (s *Select) typeIntoSearch(msg tea.KeyMsg) {
	if !s.props.Search {
		return
	}
	if !s.search.Focused() {
		s.emit(s.search.Focus())
	}
	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.emit(cmd)
	if after := s.search.Value(); after != before {
		s.applySearch(after)
	}
}

func (s *Select) applySearch(query string) {
	s.store.filtered = s.filter.Filter(query)
	s.nav.Reset()
	s.scrollOffset = 0
}

// Filtered returns the options currently visible. Implements NavTarget.
func (s *Select) Filtered() option.List {
	return s.store.filtered
}

// Selected returns the committed option. Implements NavTarget.
func (s *Select) Selected() (option.Option, bool) {
	return s.sel.get()
}

// Commit applies a user choice: an uncontrolled selection is replaced,
// the popup closes and the change is reported. Implements NavTarget.
func (s *Select) Commit(opt option.Option) {
	if s.props.Disabled {
		s.log.Logf("disabled, ignoring commit of %s", opt.ID)
		return
	}
	mode := s.Mode()
	s.sel.commit(opt, mode)
	s.nav.Reset()
	s.search.Blur()
	s.focused = true
	s.log.Logf("commit %s (%q) in %s mode", opt.ID, opt.DisplayString, mode)
	s.requestPopup(false)

	if s.props.OnChange != nil {
		s.props.OnChange(opt.ID, opt)
	}
	s.emit(msgCmd(ChangeMsg{SelectID: s.props.ID, Value: opt.ID, Option: opt}))
}

// Mode reports who owns the selection, re-evaluated from the current props.
func (s Select) Mode() Mode {
	if s.props.Value.IsZero() {
		return Uncontrolled
	}
	return Controlled
}

// PopupMode reports who owns the open flag.
func (s Select) PopupMode() Mode {
	if s.popup.controlled {
		return Controlled
	}
	return Uncontrolled
}

// Value returns the committed option.
func (s Select) Value() (option.Option, bool) {
	return s.sel.get()
}

// PopupState reports whether the popup is open or closed.
func (s Select) PopupState() PopupState {
	return s.popup.state()
}

// IsOpen reports whether the popup is showing.
func (s Select) IsOpen() bool {
	return s.popup.open
}

// Options returns the current filtered options.
func (s Select) Options() option.List {
	return s.store.filtered
}

// Highlighted returns the option shown as highlighted in the popup.
func (s Select) Highlighted() (option.Option, bool) {
	return s.nav.Active(&s)
}

// Query returns the current search text.
func (s Select) Query() string {
	return s.search.Value()
}

// SearchFocused reports whether the search field has keyboard focus.
func (s Select) SearchFocused() bool {
	return s.search.Focused()
}

// Focus gives the anchor keyboard focus.
func (s *Select) Focus() {
	s.focused = true
}

// Blur removes keyboard focus from the anchor and the search field.
func (s *Select) Blur() {
	s.focused = false
	s.search.Blur()
}

// Focused reports whether the anchor has keyboard focus.
func (s Select) Focused() bool {
	return s.focused
}

// SetOrigin records where the anchor's top-left cell is drawn, so mouse
// events in screen coordinates can be mapped onto the widget.
func (s *Select) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// Dispose tears the widget down. Deferred work scheduled before this call
// becomes a no-op.
func (s *Select) Dispose() {
	s.disposed = true
	s.search.Blur()
}

func (s *Select) emit(cmd tea.Cmd) {
	if cmd != nil {
		s.cmds = append(s.cmds, cmd)
	}
}

func (s *Select) flush() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *Select) sizeSearch() {
	// border, padding, prompt and the cursor cell
	s.search.Width = max(s.props.Width-7, 1)
}
