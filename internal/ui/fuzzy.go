package ui

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"selectbox/internal/option"
)

// Match is a single ranked hit returned by a Matcher.
type Match struct {
	Index int // position in the collection
	Score int // higher is better
}

// Matcher is the fuzzy-match engine behind the filter. Search returns hits
// best first.
type Matcher interface {
	SetCollection(labels []string)
	Search(query string) []Match
}

// FilterConfig tunes how engine results are cut down. Zero values disable
// the corresponding limit.
type FilterConfig struct {
	MaxResults int
	MinScore   int
}

// labelSource implements fuzzy.Source over lowercased labels.
type labelSource []string

func (s labelSource) String(i int) string { return s[i] }
func (s labelSource) Len() int            { return len(s) }

// fuzzyMatcher is the default Matcher, backed by sahilm/fuzzy.
type fuzzyMatcher struct {
	labels labelSource
}

// NewFuzzyMatcher returns the default sahilm/fuzzy backed engine.
func NewFuzzyMatcher() Matcher {
	return &fuzzyMatcher{}
}

func (m *fuzzyMatcher) SetCollection(labels []string) {
	lowered := make(labelSource, len(labels))
	for i, label := range labels {
		lowered[i] = strings.ToLower(label)
	}
	m.labels = lowered
}

func (m *fuzzyMatcher) Search(query string) []Match {
	found := fuzzy.FindFrom(strings.ToLower(query), m.labels)
	matches := make([]Match, 0, len(found))
	for _, f := range found {
		matches = append(matches, Match{Index: f.Index, Score: f.Score})
	}
	return matches
}

// MatcherFactory builds an empty engine. Each index gets its own.
type MatcherFactory func() Matcher

// FilterAdapter maps a query to the visible subset of the option list. An
// adapter is immutable once built; Rebuild returns a new one, so copies of a
// Select taken before a props update keep searching their own index.
type FilterAdapter struct {
	newMatcher MatcherFactory
	matcher    Matcher
	cfg        FilterConfig
	options    option.List
	labels     []string
}

// NewFilterAdapter returns an adapter with an empty index; a nil factory
// selects the fuzzy default.
func NewFilterAdapter(newMatcher MatcherFactory, cfg FilterConfig) *FilterAdapter {
	if newMatcher == nil {
		newMatcher = NewFuzzyMatcher
	}
	return &FilterAdapter{newMatcher: newMatcher, cfg: cfg}
}

// Rebuild returns an adapter indexing options with a fresh engine.
func (f *FilterAdapter) Rebuild(options option.List) *FilterAdapter {
	labels := options.Labels()
	m := f.newMatcher()
	m.SetCollection(labels)
	return &FilterAdapter{
		newMatcher: f.newMatcher,
		matcher:    m,
		cfg:        f.cfg,
		options:    options,
		labels:     labels,
	}
}

// WithConfig returns an adapter applying cfg over the same index.
func (f *FilterAdapter) WithConfig(cfg FilterConfig) *FilterAdapter {
	next := *f
	next.cfg = cfg
	return &next
}

// Config returns the limits applied to engine results.
func (f *FilterAdapter) Config() FilterConfig {
	return f.cfg
}

// Indexes reports whether options is the list the index was built from,
// with the labels it had then. A list edited in place fails the check.
func (f *FilterAdapter) Indexes(options option.List) bool {
	return sameList(f.options, options) && slices.Equal(f.labels, options.Labels())
}

// Filter returns the full list for a blank query, otherwise the ranked
// matches, best first.
func (f *FilterAdapter) Filter(query string) option.List {
	query = strings.TrimSpace(query)
	if query == "" {
		return f.options
	}
	if f.matcher == nil {
		return option.List{}
	}
	matches := f.matcher.Search(query)
	ranked := make(option.List, 0, len(matches))
	for _, m := range matches {
		if m.Index < 0 || m.Index >= len(f.options) {
			continue
		}
		if f.cfg.MinScore != 0 && m.Score < f.cfg.MinScore {
			continue
		}
		ranked = append(ranked, f.options[m.Index])
		if f.cfg.MaxResults > 0 && len(ranked) == f.cfg.MaxResults {
			break
		}
	}
	return ranked
}
