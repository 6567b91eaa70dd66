package main

import (
	"errors"
	"flag"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
)

func useTestConfig(t *testing.T, overrides map[string]any) {
	t.Helper()
	cleanup := config.ResetForTesting(t)
	t.Cleanup(cleanup)
	if err := config.ApplyOverrides(overrides); err != nil {
		t.Fatalf("apply overrides: %v", err)
	}
}

func buildRuntimeOptionsForArgs(t *testing.T, args []string, overrides map[string]any) runtimeOptions {
	t.Helper()
	useTestConfig(t, overrides)

	fs := flag.NewFlagSet("selectbox-test", flag.ContinueOnError)
	flags := runtimeFlags{
		optionsFile: fs.String("options", "", ""),
		dbPath:      fs.String("db", "", ""),
		query:       fs.String("query", "", ""),
		value:       fs.String("value", "", ""),
		search:      fs.Bool("search", config.GetBool(config.KeySearch), ""),
		placeholder: fs.String("placeholder", config.GetString(config.KeyPlaceholder), ""),
		theme:       fs.String("theme", config.GetString(config.KeyTheme), ""),
		width:       fs.Int("width", config.GetInt(config.KeyWidth), ""),
		maxVisible:  fs.Int("max-visible", config.GetInt(config.KeyMaxVisible), ""),
		copy:        fs.Bool("copy", false, ""),
		noColor:     fs.Bool("no-color", false, ""),
		debug:       fs.Bool("debug", false, ""),
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return computeRuntimeOptions(flags, visited)
}

func TestComputeRuntimeOptions(t *testing.T) {
	t.Run("ConfigDefaults", func(t *testing.T) {
		rt := buildRuntimeOptionsForArgs(t, nil, map[string]any{
			config.KeyTheme:  "nord",
			config.KeySearch: true,
			config.KeyWidth:  40,
		})
		if rt.theme != "nord" || !rt.search || rt.width != 40 {
			t.Errorf("expected config values, got %+v", rt)
		}
		if rt.placeholder != config.DefaultPlaceholder || rt.maxVisible != config.DefaultMaxVisible {
			t.Errorf("expected built-in defaults, got %+v", rt)
		}
	})

	t.Run("ExplicitFlagsWin", func(t *testing.T) {
		rt := buildRuntimeOptionsForArgs(t, []string{"--theme", " dracula ", "--search=false", "--width=50", "--placeholder", "Pick..."}, map[string]any{
			config.KeyTheme:  "nord",
			config.KeySearch: true,
		})
		if rt.theme != "dracula" || rt.search || rt.width != 50 || rt.placeholder != "Pick..." {
			t.Errorf("expected flag values, got %+v", rt)
		}
	})

	t.Run("NonPositiveSizesFallBack", func(t *testing.T) {
		rt := buildRuntimeOptionsForArgs(t, []string{"--width=0", "--max-visible=-2"}, map[string]any{
			config.KeyMaxVisible: 4,
		})
		if rt.width != config.DefaultWidth || rt.maxVisible != 4 {
			t.Errorf("expected fallbacks, got width=%d maxVisible=%d", rt.width, rt.maxVisible)
		}
	})

	t.Run("SourcesTrimmed", func(t *testing.T) {
		rt := buildRuntimeOptionsForArgs(t, []string{"--db", " /tmp/o.db ", "--value", " 2 "}, nil)
		if rt.dbPath != "/tmp/o.db" || rt.value != "2" {
			t.Errorf("expected trimmed values, got %+v", rt)
		}
	})
}

func TestMatchValue(t *testing.T) {
	opts := option.List{
		{ID: option.IntID(2), DisplayString: "Blue"},
		{ID: option.StringID("red"), DisplayString: "Red"},
	}
	if id, ok := matchValue(opts, "2"); !ok || id != option.IntID(2) {
		t.Errorf("expected numeric id 2, got %v %v", id, ok)
	}
	if id, ok := matchValue(opts, " red "); !ok || id != option.StringID("red") {
		t.Errorf("expected string id red, got %v %v", id, ok)
	}
	if _, ok := matchValue(opts, "green"); ok {
		t.Error("expected no match for green")
	}
}

// scriptedProgram feeds messages straight into the model.
type scriptedProgram struct {
	model tea.Model
	msgs  []tea.Msg
}

func (p scriptedProgram) Run() (tea.Model, error) {
	m := p.model
	for _, msg := range p.msgs {
		m, _ = m.Update(msg)
	}
	return m, nil
}

func scripted(msgs ...tea.Msg) programFactory {
	return func(m pickerModel) programRunner {
		return scriptedProgram{model: m, msgs: msgs}
	}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestRun(t *testing.T) {
	const input = "1\tRed\n2\tBlue\n3\tGreen\n"

	t.Run("ChoosesHighlightedOption", func(t *testing.T) {
		useTestConfig(t, nil)
		id, err := run(runtimeOptions{}, strings.NewReader(input), nil,
			scripted(keyPress(tea.KeyDown), keyPress(tea.KeyDown), keyPress(tea.KeyEnter)))
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
		if id != "2" {
			t.Errorf("expected id 2, got %q", id)
		}
	})

	t.Run("InitialValue", func(t *testing.T) {
		useTestConfig(t, nil)
		id, err := run(runtimeOptions{value: "3"}, strings.NewReader(input), nil, scripted(keyPress(tea.KeyEnter)))
		if err != nil || id != "3" {
			t.Fatalf("expected the initial value confirmed, got %q (%v)", id, err)
		}
	})

	t.Run("SearchThenChoose", func(t *testing.T) {
		useTestConfig(t, nil)
		id, err := run(runtimeOptions{search: true}, strings.NewReader(input), nil, scripted(
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")},
			keyPress(tea.KeyDown),
			keyPress(tea.KeyEnter),
		))
		if err != nil || id != "3" {
			t.Fatalf("expected Green (3), got %q (%v)", id, err)
		}
	})

	t.Run("EscapeCancels", func(t *testing.T) {
		useTestConfig(t, nil)
		_, err := run(runtimeOptions{}, strings.NewReader(input), nil, scripted(keyPress(tea.KeyDown), keyPress(tea.KeyEsc)))
		if !errors.Is(err, errCancelled) {
			t.Fatalf("expected cancellation, got %v", err)
		}
	})

	t.Run("CtrlCCancels", func(t *testing.T) {
		useTestConfig(t, nil)
		_, err := run(runtimeOptions{}, strings.NewReader(input), nil, scripted(keyPress(tea.KeyCtrlC)))
		if !errors.Is(err, errCancelled) {
			t.Fatalf("expected cancellation, got %v", err)
		}
	})

	t.Run("UnknownValue", func(t *testing.T) {
		useTestConfig(t, nil)
		_, err := run(runtimeOptions{value: "9"}, strings.NewReader(input), nil, func(pickerModel) programRunner {
			t.Fatal("program must not start")
			return nil
		})
		if !appErrors.IsCode(err, appErrors.CodeNotFound) {
			t.Fatalf("expected not_found, got %v", err)
		}
	})

	t.Run("LoadErrorStopsSpinner", func(t *testing.T) {
		useTestConfig(t, nil)
		spinner := &mockSpinner{}
		_, err := run(runtimeOptions{optionsFile: "/nonexistent/options.yaml"}, nil, func() loadAnimator {
			return spinner
		}, scripted())
		if err == nil {
			t.Fatal("expected a load error")
		}
		if spinner.stopCount != 1 || len(spinner.stages) != 1 {
			t.Errorf("expected one stage and one stop, got %+v", spinner)
		}
		if !strings.Contains(spinner.stages[0], "/nonexistent/options.yaml") {
			t.Errorf("expected stage to name the source, got %q", spinner.stages[0])
		}
	})

	t.Run("NilFactory", func(t *testing.T) {
		useTestConfig(t, nil)
		if _, err := run(runtimeOptions{}, strings.NewReader(input), nil, nil); err == nil {
			t.Fatal("expected error for nil factory")
		}
	})
}

type mockSpinner struct {
	stages    []string
	stopped   bool
	stopCount int
}

func (m *mockSpinner) Stage(detail string) {
	m.stages = append(m.stages, detail)
}

func (m *mockSpinner) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.stopCount++
}
