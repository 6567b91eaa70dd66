package ui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/option"
)

// scriptedMatcher returns canned results and records what it was given.
type scriptedMatcher struct {
	collections [][]string
	queries     []string
	results     []Match
}

func (m *scriptedMatcher) SetCollection(labels []string) {
	m.collections = append(m.collections, labels)
}

func (m *scriptedMatcher) Search(query string) []Match {
	m.queries = append(m.queries, query)
	return m.results
}

// useMatcher hands out m for every index, so tests can inspect it.
func useMatcher(m *scriptedMatcher) MatcherFactory {
	return func() Matcher { return m }
}

func TestFuzzyMatcher(t *testing.T) {
	f := NewFilterAdapter(nil, FilterConfig{}).Rebuild(paletteOptions())

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := labels(f.Filter("BLU"))
		if !slices.Equal(got, []string{"Blue"}) {
			t.Errorf("expected [Blue], got %v", got)
		}
	})

	t.Run("Subsequence", func(t *testing.T) {
		got := labels(f.Filter("ylw"))
		if !slices.Equal(got, []string{"Yellow"}) {
			t.Errorf("expected [Yellow], got %v", got)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		if got := f.Filter("zzz"); len(got) != 0 {
			t.Errorf("expected no matches, got %v", labels(got))
		}
	})

	t.Run("BlankQueryReturnsAll", func(t *testing.T) {
		for _, q := range []string{"", "   ", "\t"} {
			if got := labels(f.Filter(q)); !slices.Equal(got, labels(paletteOptions())) {
				t.Errorf("query %q: expected full list, got %v", q, got)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := labels(f.Filter("re"))
		second := labels(f.Filter("re"))
		if !slices.Equal(first, second) {
			t.Errorf("expected identical results, got %v and %v", first, second)
		}
	})
}

func TestFilterAdapter(t *testing.T) {
	opts := paletteOptions()

	t.Run("KeepsEngineOrder", func(t *testing.T) {
		m := &scriptedMatcher{results: []Match{{Index: 4, Score: 9}, {Index: 0, Score: 3}}}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{}).Rebuild(opts)
		if got := labels(f.Filter("x")); !slices.Equal(got, []string{"Blue", "Red"}) {
			t.Errorf("expected [Blue Red], got %v", got)
		}
	})

	t.Run("TrimsQuery", func(t *testing.T) {
		m := &scriptedMatcher{}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{}).Rebuild(opts)
		f.Filter("  re ")
		if !slices.Equal(m.queries, []string{"re"}) {
			t.Errorf("expected trimmed query, got %q", m.queries)
		}
	})

	t.Run("BlankQuerySkipsEngine", func(t *testing.T) {
		m := &scriptedMatcher{}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{}).Rebuild(opts)
		f.Filter(" ")
		if len(m.queries) != 0 {
			t.Errorf("expected engine untouched, got %q", m.queries)
		}
	})

	t.Run("MaxResults", func(t *testing.T) {
		m := &scriptedMatcher{results: []Match{{Index: 1}, {Index: 2}, {Index: 3}}}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{MaxResults: 2}).Rebuild(opts)
		if got := labels(f.Filter("x")); !slices.Equal(got, []string{"Orange", "Yellow"}) {
			t.Errorf("expected first two matches, got %v", got)
		}
	})

	t.Run("MinScore", func(t *testing.T) {
		m := &scriptedMatcher{results: []Match{{Index: 1, Score: 12}, {Index: 2, Score: 4}, {Index: 3, Score: 10}}}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{MinScore: 10}).Rebuild(opts)
		if got := labels(f.Filter("x")); !slices.Equal(got, []string{"Orange", "Green"}) {
			t.Errorf("expected matches scoring at least 10, got %v", got)
		}
	})

	t.Run("IgnoresOutOfRangeIndexes", func(t *testing.T) {
		m := &scriptedMatcher{results: []Match{{Index: -1}, {Index: 99}, {Index: 0}}}
		f := NewFilterAdapter(useMatcher(m), FilterConfig{}).Rebuild(opts)
		if got := labels(f.Filter("x")); !slices.Equal(got, []string{"Red"}) {
			t.Errorf("expected [Red], got %v", got)
		}
	})

	t.Run("RebuildFeedsLabels", func(t *testing.T) {
		m := &scriptedMatcher{}
		_ = NewFilterAdapter(useMatcher(m), FilterConfig{}).Rebuild(opts)
		if len(m.collections) != 1 || !slices.Equal(m.collections[0], labels(opts)) {
			t.Errorf("expected labels indexed once, got %v", m.collections)
		}
	})
}

func TestRebuildLeavesAdapterUntouched(t *testing.T) {
	before := NewFilterAdapter(nil, FilterConfig{}).Rebuild(paletteOptions())
	after := before.Rebuild(option.List{{ID: option.StringID("teal"), DisplayString: "Teal"}})

	if got := labels(before.Filter("blu")); !slices.Equal(got, []string{"Blue"}) {
		t.Errorf("expected the original index intact, got %v", got)
	}
	if got := labels(after.Filter("te")); !slices.Equal(got, []string{"Teal"}) {
		t.Errorf("expected the new index, got %v", got)
	}
}

func TestSelectRebuildsIndexOnlyOnChange(t *testing.T) {
	var built []*scriptedMatcher
	factory := func() Matcher {
		m := &scriptedMatcher{}
		built = append(built, m)
		return m
	}
	opts := colorOptions()
	s := newTestSelect(t, Props{Options: opts, NewMatcher: factory})

	s, _ = s.SetProps(Props{Options: opts})
	if len(built) != 1 {
		t.Fatalf("same list must not rebuild, got %d builds", len(built))
	}

	replaced := append(option.List(nil), opts...)
	s, _ = s.SetProps(Props{Options: replaced})
	if len(built) != 2 {
		t.Errorf("replaced list must rebuild, got %d builds", len(built))
	}
	if len(s.Options()) != len(replaced) {
		t.Errorf("expected full list with an empty query, got %v", labels(s.Options()))
	}
}

func TestSelectReindexesLabelsEditedInPlace(t *testing.T) {
	opts := paletteOptions()
	s := newTestSelect(t, Props{Options: opts, Search: true})

	opts[4].DisplayString = "Azure"
	s, _ = s.SetProps(Props{Options: opts, Search: true})
	s = send(s, keyMsg(tea.KeyEnter))
	s = typeText(s, "azu")

	if got := labels(s.Options()); !slices.Equal(got, []string{"Azure"}) {
		t.Errorf("expected search over the edited labels, got %v", got)
	}
}

func TestSetPropsLeavesEarlierCopyIndexed(t *testing.T) {
	before := newTestSelect(t, Props{Options: paletteOptions(), Search: true})
	before = send(before, keyMsg(tea.KeyEnter))

	after, _ := before.SetProps(Props{Options: option.List{
		{ID: option.StringID("teal"), DisplayString: "Teal"},
	}, Search: true})

	before = typeText(before, "blu")
	if got := labels(before.Options()); !slices.Equal(got, []string{"Blue"}) {
		t.Errorf("earlier copy should search its own options, got %v", got)
	}
	after = typeText(after, "te")
	if got := labels(after.Options()); !slices.Equal(got, []string{"Teal"}) {
		t.Errorf("updated copy should search the new options, got %v", got)
	}
}

func TestSelectFilterConfigChange(t *testing.T) {
	m := &scriptedMatcher{results: []Match{{Index: 0}, {Index: 1}}}
	s := newTestSelect(t, Props{Options: colorOptions(), Search: true, NewMatcher: useMatcher(m)})
	s = send(s, keyMsg(tea.KeyEnter))
	s = typeText(s, "x")
	if len(s.Options()) != 2 {
		t.Fatalf("expected both matches, got %v", labels(s.Options()))
	}

	s, _ = s.SetProps(Props{Options: s.Props().Options, Search: true, Filter: FilterConfig{MaxResults: 1}})
	if got := labels(s.Options()); !slices.Equal(got, []string{"Red"}) {
		t.Errorf("expected the new limit applied to the current query, got %v", got)
	}
}

func TestSelectFilterReappliedOnReplacement(t *testing.T) {
	s := newTestSelect(t, Props{Options: paletteOptions(), Search: true})
	s = send(s, keyMsg(tea.KeyEnter))
	s = typeText(s, "re")

	s, _ = s.SetProps(Props{Options: option.List{
		{ID: option.StringID("teal"), DisplayString: "Teal"},
		{ID: option.StringID("cream"), DisplayString: "Cream"},
	}, Search: true})

	if got := labels(s.Options()); !slices.Equal(got, []string{"Cream"}) {
		t.Errorf("expected current query applied to the new list, got %v", got)
	}
}
