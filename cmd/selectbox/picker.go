package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/option"
	"selectbox/internal/ui"
)

// pickResult is filled in by the select's callbacks, which run inside
// Update before it returns.
type pickResult struct {
	chosen option.Option
	has    bool
	closed bool
}

// pickerModel shows a single select with its popup held open. The first
// close request, from a commit or a dismiss, ends the program.
type pickerModel struct {
	sel    ui.Select
	result *pickResult
	quit   key.Binding
}

func newPicker(opts option.List, props ui.Props) (pickerModel, error) {
	result := &pickResult{}
	props.Options = opts
	props.ID = "picker"
	props.Open = ui.OpenFlag(true)
	props.OnChange = func(_ option.ID, opt option.Option) {
		result.chosen, result.has = opt, true
	}
	props.OnPopupStateChange = func(open bool) {
		if !open {
			result.closed = true
		}
	}

	sel, err := ui.New(props)
	if err != nil {
		return pickerModel{}, err
	}
	sel.Focus()
	return pickerModel{
		sel:    sel,
		result: result,
		quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}, nil
}

func (m pickerModel) Init() tea.Cmd {
	return m.sel.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.quit) {
		m.result.closed = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.sel, cmd = m.sel.Update(msg)
	if m.result.closed {
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickerModel) View() string {
	if m.result.closed {
		return ""
	}
	hints := append(ui.HintsFor(m.sel.HelpBindings()...), ui.FooterHint{Key: "ctrl+c", Desc: "cancel"})
	return m.sel.View() + "\n" + ui.RenderFooter(hints, m.sel.Props().Width+16) + "\n"
}

// Chosen returns the committed option, if the user picked one.
func (m pickerModel) Chosen() (option.Option, bool) {
	return m.result.chosen, m.result.has
}
