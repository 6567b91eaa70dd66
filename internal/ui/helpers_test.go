package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/option"
)

func colorOptions() option.List {
	return option.List{
		{ID: option.IntID(1), DisplayString: "Red"},
		{ID: option.IntID(2), DisplayString: "Blue"},
	}
}

func paletteOptions() option.List {
	return option.List{
		{ID: option.StringID("red"), DisplayString: "Red"},
		{ID: option.StringID("orange"), DisplayString: "Orange"},
		{ID: option.StringID("yellow"), DisplayString: "Yellow"},
		{ID: option.StringID("green"), DisplayString: "Green"},
		{ID: option.StringID("blue"), DisplayString: "Blue"},
	}
}

// recorder captures the synchronous callbacks.
type recorder struct {
	changes []option.Option
	popups  []bool
}

func (r *recorder) wire(p Props) Props {
	p.OnChange = func(id option.ID, opt option.Option) {
		if id != opt.ID {
			panic("OnChange id does not match option id")
		}
		r.changes = append(r.changes, opt)
	}
	p.OnPopupStateChange = func(open bool) {
		r.popups = append(r.popups, open)
	}
	return p
}

func newTestSelect(t *testing.T, p Props) Select {
	t.Helper()
	s, err := New(p)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	s.Focus()
	return s
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// send feeds messages through Update, discarding commands.
func send(s Select, msgs ...tea.Msg) Select {
	for _, msg := range msgs {
		s, _ = s.Update(msg)
	}
	return s
}

// typeText sends one key per rune.
func typeText(s Select, text string) Select {
	for _, r := range text {
		s = send(s, runes(string(r)))
	}
	return s
}

// collect runs a command and flattens batches. Only use it on commands
// known to be built from the widget's own messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func selectedLabel(s Select) string {
	opt, ok := s.Value()
	if !ok {
		return ""
	}
	return opt.DisplayString
}

func labels(l option.List) []string {
	return l.Labels()
}
