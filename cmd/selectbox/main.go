package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"selectbox/internal/config"
	"selectbox/internal/debug"
	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
	"selectbox/internal/source"
	"selectbox/internal/ui"
	"selectbox/internal/ui/theme"
)

const (
	loadTimeout  = 30 * time.Second
	spinnerDelay = 150 * time.Millisecond

	exitCancelled = 1
	exitError     = 2
)

// errCancelled is returned when the picker closes without a choice.
var errCancelled = errors.New("selection cancelled")

func main() {
	os.Exit(realMain())
}

func realMain() int {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		return exitError
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	optionsFlag := flag.String("options", "", "YAML file with an options list")
	dbFlag := flag.String("db", "", "SQLite database to read options from")
	queryFlag := flag.String("query", "", "Query returning id and label columns (with --db)")
	valueFlag := flag.String("value", "", "Initially selected option id")
	searchFlag := flag.Bool("search", config.GetBool(config.KeySearch), "Show the search field")
	placeholderFlag := flag.String("placeholder", config.GetString(config.KeyPlaceholder), "Text shown when nothing is selected")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	widthFlag := flag.Int("width", config.GetInt(config.KeyWidth), "Width of the select in cells")
	maxVisibleFlag := flag.Int("max-visible", config.GetInt(config.KeyMaxVisible), "Option rows shown at once")
	copyFlag := flag.Bool("copy", false, "Also copy the chosen id to the clipboard")
	noColorFlag := flag.Bool("no-color", false, "Disable colors")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.selectbox/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		return 0
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	rt := computeRuntimeOptions(runtimeFlags{
		optionsFile: optionsFlag,
		dbPath:      dbFlag,
		query:       queryFlag,
		value:       valueFlag,
		search:      searchFlag,
		placeholder: placeholderFlag,
		theme:       themeFlag,
		width:       widthFlag,
		maxVisible:  maxVisibleFlag,
		copy:        copyFlag,
		noColor:     noColorFlag,
		debug:       debugFlag,
	}, visited)

	if rt.debug {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Close()
	}
	if rt.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !theme.SetTheme(rt.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", rt.theme, theme.CurrentName())
	}

	id, err := run(rt, os.Stdin, func() loadAnimator {
		return newLoadSpinner(os.Stderr, spinnerDelay)
	}, func(m pickerModel) programRunner {
		return tea.NewProgram(m, programOptions(os.Stdin)...)
	})
	switch {
	case errors.Is(err, errCancelled):
		return exitCancelled
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	fmt.Fprintln(os.Stdout, id)
	if rt.copy {
		if err := clipboard.WriteAll(id); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: copy to clipboard failed: %v\n", err)
		}
	}
	return 0
}

// programOptions renders to stderr so stdout carries only the result, and
// reads keys from the terminal when options arrive on stdin.
func programOptions(stdin *os.File) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithMouseCellMotion(),
	}
	if !isatty.IsTerminal(stdin.Fd()) && !isatty.IsCygwinTerminal(stdin.Fd()) {
		opts = append(opts, tea.WithInputTTY())
	}
	return opts
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(pickerModel) programRunner

// loadAnimator reports progress while options load.
type loadAnimator interface {
	Stage(detail string)
	Stop()
}

type animatorFactory func() loadAnimator

// run loads options, shows the picker and returns the chosen id.
func run(rt runtimeOptions, stdin io.Reader, newAnimator animatorFactory, factory programFactory) (string, error) {
	spec := source.Spec{
		OptionsFile: rt.optionsFile,
		DBPath:      rt.dbPath,
		Query:       rt.query,
		Stdin:       stdin,
	}

	var spinner loadAnimator
	if newAnimator != nil {
		spinner = newAnimator()
	}
	if spinner != nil {
		spinner.Stage("Loading options from " + spec.Describe())
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	opts, err := source.Load(ctx, spec)
	cancel()
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return "", fmt.Errorf("load options: %w", err)
	}
	debug.Logf("loaded %d options from %s", len(opts), spec.Describe())

	var value option.ID
	if rt.value != "" {
		var ok bool
		if value, ok = matchValue(opts, rt.value); !ok {
			return "", appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("no option with id %q", rt.value), nil)
		}
	}

	picker, err := newPicker(opts, ui.Props{
		Value:       value,
		Search:      rt.search,
		Placeholder: rt.placeholder,
		Width:       rt.width,
		MaxVisible:  rt.maxVisible,
		Filter: ui.FilterConfig{
			MaxResults: config.GetInt(config.KeyFilterMaxResults),
			MinScore:   config.GetInt(config.KeyFilterMinScore),
		},
	})
	if err != nil {
		return "", fmt.Errorf("initialize picker: %w", err)
	}
	if factory == nil {
		return "", fmt.Errorf("program factory is nil")
	}
	prog := factory(picker)
	if prog == nil {
		return "", fmt.Errorf("program is nil")
	}
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(pickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final model %T", final)
	}
	chosen, ok := m.Chosen()
	if !ok {
		return "", errCancelled
	}
	return chosen.ID.String(), nil
}

// matchValue finds the option whose id prints as raw, so "2" matches both a
// numeric and a string id.
func matchValue(opts option.List, raw string) (option.ID, bool) {
	raw = strings.TrimSpace(raw)
	for _, o := range opts {
		if o.ID.String() == raw {
			return o.ID, true
		}
	}
	return option.ID{}, false
}

type runtimeFlags struct {
	optionsFile *string
	dbPath      *string
	query       *string
	value       *string
	search      *bool
	placeholder *string
	theme       *string
	width       *int
	maxVisible  *int
	copy        *bool
	noColor     *bool
	debug       *bool
}

type runtimeOptions struct {
	optionsFile string
	dbPath      string
	query       string
	value       string
	search      bool
	placeholder string
	theme       string
	width       int
	maxVisible  int
	copy        bool
	noColor     bool
	debug       bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	rt := runtimeOptions{
		optionsFile: strings.TrimSpace(deref(flags.optionsFile)),
		dbPath:      strings.TrimSpace(deref(flags.dbPath)),
		query:       strings.TrimSpace(deref(flags.query)),
		value:       strings.TrimSpace(deref(flags.value)),
		copy:        derefBool(flags.copy),
		noColor:     derefBool(flags.noColor),
		debug:       derefBool(flags.debug),

		search:      config.GetBool(config.KeySearch),
		placeholder: config.GetString(config.KeyPlaceholder),
		theme:       strings.TrimSpace(config.GetString(config.KeyTheme)),
		width:       sanitizePositive(config.GetInt(config.KeyWidth), config.DefaultWidth),
		maxVisible:  sanitizePositive(config.GetInt(config.KeyMaxVisible), config.DefaultMaxVisible),
	}

	if flagWasExplicitlySet("search", visited) {
		rt.search = derefBool(flags.search)
	}
	if flagWasExplicitlySet("placeholder", visited) {
		rt.placeholder = deref(flags.placeholder)
	}
	if flagWasExplicitlySet("theme", visited) {
		rt.theme = strings.TrimSpace(deref(flags.theme))
	}
	if flagWasExplicitlySet("width", visited) && flags.width != nil {
		rt.width = sanitizePositive(*flags.width, rt.width)
	}
	if flagWasExplicitlySet("max-visible", visited) && flags.maxVisible != nil {
		rt.maxVisible = sanitizePositive(*flags.maxVisible, rt.maxVisible)
	}
	return rt
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}

func sanitizePositive(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
