package lexsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/lexsearch"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

func elvish() morpheme.Table {
	return morpheme.Table{
		morpheme.Prefix: {"Dun": morpheme.Plain("dark"), "xy": morpheme.Plain("first")},
		morpheme.Root: {
			"mor": morpheme.Described("Shadow", map[string]any{"origin": "old"}),
			"gil": morpheme.Plain("star"),
			"xy":  morpheme.Plain("second"),
		},
		morpheme.Modifier: {"xy": morpheme.Plain("last")},
		"epithet":         {"thalion": morpheme.Plain("steadfast")},
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("key match ignores case", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{"Dun": "dark"}, lexsearch.Search(elvish(), "dUN"))
	})

	t.Run("gloss match", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{"mor": "Shadow"}, lexsearch.Search(elvish(), "shad"))
	})

	t.Run("key and gloss both match once", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{morpheme.Root: {"star": morpheme.Plain("starlight")}}
		assert.Equal(t, map[string]string{"star": "starlight"}, lexsearch.Search(table, "STAR"))
	})

	t.Run("no match is absent", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lexsearch.Search(elvish(), "dragon"))
	})

	t.Run("last category shadows earlier ones", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{"xy": "last"}, lexsearch.Search(elvish(), "xy"))
	})

	t.Run("extension categories are searched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]string{"thalion": "steadfast"}, lexsearch.Search(elvish(), "fast"))
	})

	t.Run("missing categories tolerated", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lexsearch.Search(morpheme.Table{}, "a"))
		assert.Empty(t, lexsearch.Search(nil, "a"))
	})
}

func TestSearchAll(t *testing.T) {
	t.Parallel()

	dark := morpheme.Merge(elvish(), morpheme.Table{morpheme.Root: {"morn": morpheme.Plain("black")}})
	human := morpheme.Table{morpheme.Root: {"ald": morpheme.Plain("old")}}
	handles := []lexsearch.Handle{
		lexsearch.NewHandle("Elvish", "", elvish()),
		lexsearch.NewHandle("Elvish", "dark-elven", dark),
		lexsearch.NewHandle("Human", "", human),
	}

	results := lexsearch.SearchAll(handles, "blac")
	assert.Equal(t, map[string]map[string]string{
		"Elvish (dark-elven)": {"morn": "black"},
	}, results)

	results = lexsearch.SearchAll(handles, "mor")
	require.Len(t, results, 2)
	assert.Contains(t, results, "Elvish")
	assert.Contains(t, results, "Elvish (dark-elven)")
	assert.NotContains(t, results, "Human")
}

func TestFind(t *testing.T) {
	t.Parallel()

	matches := lexsearch.Find(elvish(), "xy")
	assert.Equal(t, []lexsearch.Match{
		{Category: morpheme.Prefix, Key: "xy", Gloss: "first"},
		{Category: morpheme.Root, Key: "xy", Gloss: "second"},
		{Category: morpheme.Modifier, Key: "xy", Gloss: "last"},
	}, matches)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Elvish", lexsearch.DisplayName("Elvish", ""))
	assert.Equal(t, "Elvish (dark-elven)", lexsearch.DisplayName("Elvish", "dark-elven"))

	h := lexsearch.NewHandle("Human", "archaic", nil)
	assert.Equal(t, "Human (archaic)", h.Name)
	assert.Equal(t, "Human", h.Language)
	assert.Equal(t, "archaic", h.Subset)
}
