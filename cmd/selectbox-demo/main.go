// Demo program to visually test the Select component in both ownership modes
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectbox/internal/config"
	"selectbox/internal/option"
	"selectbox/internal/ui"
	"selectbox/internal/ui/theme"
)

const (
	freeID       = "free"
	controlledID = "controlled"

	selectWidth = 30
	selectTop   = 3
	rightColumn = 36
)

var fruits = option.List{
	{ID: option.IntID(1), DisplayString: "Apple"},
	{ID: option.IntID(2), DisplayString: "Banana"},
	{ID: option.IntID(3), DisplayString: "Cherry"},
	{ID: option.IntID(4), DisplayString: "Dragon fruit"},
	{ID: option.IntID(5), DisplayString: "Elderberry"},
	{ID: option.IntID(6), DisplayString: "Fig"},
	{ID: option.IntID(7), DisplayString: "Grapefruit"},
	{ID: option.IntID(8), DisplayString: "Honeydew melon with a very long name"},
}

type model struct {
	free       ui.Select
	controlled ui.Select

	// State the parent owns for the controlled select.
	value option.ID
	open  bool

	focusRight bool
	width      int
	height     int
	status     string
	log        []string
	quit       bool
}

func initialModel() (model, error) {
	free, err := ui.New(ui.Props{
		ID:          freeID,
		Options:     fruits,
		Placeholder: "Pick a fruit...",
		Search:      true,
		Width:       selectWidth,
		MaxVisible:  5,
	})
	if err != nil {
		return model{}, err
	}
	free.Focus()
	free.SetOrigin(0, selectTop)

	m := model{
		free:   free,
		value:  option.IntID(3),
		width:  80,
		height: 24,
	}
	m.controlled, err = ui.New(m.controlledProps())
	if err != nil {
		return model{}, err
	}
	m.controlled.SetOrigin(rightColumn, selectTop)
	return m, nil
}

func (m model) controlledProps() ui.Props {
	return ui.Props{
		ID:         controlledID,
		Options:    fruits,
		Value:      m.value,
		Open:       ui.OpenFlag(m.open),
		Search:     true,
		Width:      selectWidth,
		MaxVisible: 5,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.free.Init(), m.controlled.Init())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "q":
			if !m.free.IsOpen() && !m.controlled.IsOpen() {
				m.quit = true
				return m, tea.Quit
			}
		case "tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+t":
			name := theme.CycleTheme()
			if err := config.SaveTheme(name); err != nil {
				m.status = fmt.Sprintf("theme %s (not saved: %v)", name, err)
			} else {
				m.status = "theme " + name + " saved"
			}
			return m, nil
		}
	case ui.ChangeMsg:
		m.record(fmt.Sprintf("%s: change -> %s (%s)", msg.SelectID, msg.Option.DisplayString, msg.Value))
		if msg.SelectID == controlledID {
			m.value = msg.Value
			return m.syncControlled()
		}
		return m, nil
	case ui.PopupStateMsg:
		m.record(fmt.Sprintf("%s: popup %v", msg.SelectID, msg.Open))
		if msg.SelectID == controlledID {
			m.open = msg.Open
			return m.syncControlled()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.free, cmd = m.free.Update(msg)
	cmds = append(cmds, cmd)
	m.controlled, cmd = m.controlled.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// syncControlled mirrors the parent's state back into the controlled select.
func (m model) syncControlled() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.controlled, cmd = m.controlled.SetProps(m.controlledProps())
	return m, cmd
}

func (m *model) toggleFocus() {
	m.focusRight = !m.focusRight
	if m.focusRight {
		m.free.Blur()
		m.controlled.Focus()
	} else {
		m.controlled.Blur()
		m.free.Focus()
	}
}

func (m *model) record(line string) {
	m.log = append(m.log, line)
	if len(m.log) > 5 {
		m.log = m.log[len(m.log)-5:]
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	rows := make([]string, max(m.height, selectTop+1))
	rows[0] = titleStyle.Render("Select Demo") + "  " + labelStyle.Render("theme: "+theme.CurrentName())
	rows[2] = padTo(labelStyle.Render("Uncontrolled"), rightColumn) + labelStyle.Render("Controlled (parent owns value and open)")

	below := selectTop + 4
	lines := []string{
		fmt.Sprintf("parent value: %s   parent open: %v", m.value, m.open),
		"",
	}
	lines = append(lines, m.log...)
	if m.status != "" {
		lines = append(lines, "", m.status)
	}
	focused := m.free
	if m.focusRight {
		focused = m.controlled
	}
	hints := append(ui.HintsFor(focused.HelpBindings()...),
		ui.FooterHint{Key: "tab", Desc: "switch"},
		ui.FooterHint{Key: "ctrl+t", Desc: "theme"},
		ui.FooterHint{Key: "q", Desc: "quit"},
	)
	lines = append(lines, "", ui.RenderFooter(hints, m.width))
	for i, line := range lines {
		if below+i < len(rows) {
			rows[below+i] = line
		}
	}
	base := strings.Join(rows, "\n")

	// Draw the open popup last so it floats over the other select.
	first, second := &m.free, &m.controlled
	firstX, secondX := 0, rightColumn
	if m.free.IsOpen() {
		first, second = second, first
		firstX, secondX = secondX, firstX
	}
	out := ui.Overlay(base, first, firstX, selectTop, m.width, m.height)
	return ui.Overlay(out, second, secondX, selectTop, m.width, m.height)
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
	theme.SetTheme(config.GetString(config.KeyTheme))

	m, err := initialModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
