package conlang_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lang "github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/namegen"
	"github.com/dmitrymomot/conlang/pkg/source"
	"github.com/dmitrymomot/conlang/svc/conlang"
)

func library() *lang.Loader {
	fsys := fstest.MapFS{
		"Conlangs/Elvish/Elvish.json": {Data: []byte(`{
			"prefix": {"dun": "dark", "gil": "star"},
			"root": {"mor": {"meaning": "shadow"}, "dor": "land"},
			"subsets": {"dark-elven": "Conlangs/Elvish/Subsets/DarkElven.json"}
		}`)},
		"Conlangs/Elvish/Subsets/DarkElven.json": {Data: []byte(`{"root": {"morn": "night"}}`)},
		"Conlangs/Human/Human.json":              {Data: []byte(`{"root": {"mor": "moor", "wyn": "joy"}}`)},
	}
	return lang.NewLoader(source.NewFS(fsys))
}

// generator always picks the middle element, so single-template catalogs
// are deterministic.
func generator(templates ...string) *namegen.Generator {
	return namegen.New(&namegen.Options{
		Templates: templates,
		Picker:    namegen.PickerFunc(func(n int) int { return n / 2 }),
	})
}

type staticIndex map[string]map[string]string

func (s staticIndex) Search(context.Context, string) (map[string]map[string]string, error) {
	return s, nil
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("language", func(t *testing.T) {
		t.Parallel()
		svc := conlang.New(library(), conlang.WithGenerator(generator("prefix-root")))
		name, err := svc.Generate(ctx, conlang.Request{Language: "elvish"})
		require.NoError(t, err)
		assert.Equal(t, "Gilmor", name.Text)
		assert.Equal(t, "star shadow", name.Meaning)
	})

	t.Run("subset", func(t *testing.T) {
		t.Parallel()
		svc := conlang.New(library(), conlang.WithGenerator(generator("root")))
		name, err := svc.Generate(ctx, conlang.Request{Language: "ELVISH", Subset: "dark-elven"})
		require.NoError(t, err)
		assert.Equal(t, "Mor", name.Text)
		assert.Equal(t, "shadow", name.Meaning)
	})

	t.Run("hybrid takes precedence over language", func(t *testing.T) {
		t.Parallel()
		svc := conlang.New(library(), conlang.WithGenerator(generator("root")))
		name, err := svc.Generate(ctx, conlang.Request{
			Language: "missing",
			Hybrid:   []lang.Pair{{Language: "elvish"}, {Language: "human"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Mor", name.Text)
		assert.Equal(t, "moor", name.Meaning)
	})

	t.Run("language required", func(t *testing.T) {
		t.Parallel()
		_, err := conlang.New(library()).Generate(ctx, conlang.Request{Subset: "dark-elven"})
		assert.ErrorIs(t, err, morpheme.ErrConfiguration)
		assert.ErrorIs(t, err, conlang.ErrLanguageRequired)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := conlang.New(library()).Generate(ctx, conlang.Request{Language: "orcish"})
		assert.ErrorIs(t, err, morpheme.ErrNotFound)
	})
}

func TestGenerateN(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := conlang.New(library(), conlang.WithSeed(7), conlang.WithMaxNames(5))

	names, err := svc.GenerateN(ctx, conlang.Request{Language: "human"}, 5)
	require.NoError(t, err)
	assert.Len(t, names, 5)

	_, err = svc.GenerateN(ctx, conlang.Request{Language: "human"}, 6)
	assert.ErrorIs(t, err, conlang.ErrTooManyNames)

	_, err = svc.GenerateN(ctx, conlang.Request{Language: "human"}, 0)
	assert.ErrorIs(t, err, morpheme.ErrConfiguration)

	same := conlang.New(library(), conlang.WithSeed(7))
	again, err := same.GenerateN(ctx, conlang.Request{Language: "human"}, 5)
	require.NoError(t, err)
	assert.Equal(t, names, again)
	assert.Len(t, same.Templates(), len(namegen.DefaultTemplates))
}

func TestLanguagesAndHandles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	langs, err := conlang.New(library()).Languages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Elvish", "Human"}, langs)

	fixed := conlang.New(library(), conlang.WithLanguages("human"))
	langs, err = fixed.Languages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"human"}, langs)

	handles, err := conlang.New(library()).Handles(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(handles))
	for _, h := range handles {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"Elvish", "Elvish (dark-elven)", "Human"}, names)
}

func TestSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := conlang.New(library()).Search(ctx, "MOR")
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{
		"Elvish":              {"mor": "shadow"},
		"Elvish (dark-elven)": {"mor": "shadow", "morn": "night"},
		"Human":               {"mor": "moor"},
	}, got)

	_, err = conlang.New(library()).Search(ctx, "  ")
	assert.ErrorIs(t, err, conlang.ErrEmptyTerm)

	idx := staticIndex{"Human": {"wyn": "joy"}}
	got, err = conlang.New(library(), conlang.WithSearchIndex(idx)).Search(ctx, "joy")
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string(idx), got)
}

func TestFind(t *testing.T) {
	t.Parallel()

	matches, err := conlang.New(library()).Find(context.Background(), conlang.Request{Language: "elvish"}, "dark")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, morpheme.Prefix, matches[0].Category)
	assert.Equal(t, "dun", matches[0].Key)

	_, err = conlang.New(library()).Find(context.Background(), conlang.Request{}, "dark")
	assert.True(t, errors.Is(err, conlang.ErrLanguageRequired))
}
