package namegen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/namegen"
)

// sequence returns a picker that replays the given indices in order.
func sequence(t *testing.T, indices ...int) namegen.Picker {
	t.Helper()
	i := 0
	return namegen.PickerFunc(func(n int) int {
		require.Less(t, i, len(indices), "picker called more times than expected")
		idx := indices[i]
		require.Less(t, idx, n)
		i++
		return idx
	})
}

func TestGenerateName(t *testing.T) {
	t.Parallel()

	t.Run("end to end", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{
			morpheme.Root:   {"mor": morpheme.Plain("shadow")},
			morpheme.Prefix: {"dun": morpheme.Plain("dark")},
		}
		name, meaning, err := namegen.GenerateName(table, []string{"prefix-root"}, sequence(t, 0, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, "Dunmor", name)
		assert.Equal(t, "dark shadow", meaning)
	})

	t.Run("upper-cases only the first character", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{
			morpheme.Root:   {"ab": morpheme.Plain("first"), "zz": morpheme.Plain("other")},
			morpheme.Suffix: {"cd": morpheme.Described("second", nil), "Ef": morpheme.Plain("third")},
		}
		// suffix keys sorted: "Ef", "cd"
		name, meaning, err := namegen.GenerateName(table, []string{"root-suffix"}, sequence(t, 0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, "Abcd", name)
		assert.Equal(t, "first second", meaning)

		name, _, err = namegen.GenerateName(table, []string{"root-suffix"}, sequence(t, 0, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, "AbEf", name)
	})

	t.Run("single character name", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{morpheme.Root: {"é": morpheme.Plain("one")}}
		name, meaning, err := namegen.GenerateName(table, []string{"root"}, sequence(t, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, "É", name)
		assert.Equal(t, "one", meaning)
	})

	t.Run("empty category slot equals omitted slot", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{
			morpheme.Prefix:   {"dun": morpheme.Plain("dark")},
			morpheme.Modifier: {},
			morpheme.Root:     {"mor": morpheme.Plain("shadow")},
		}
		withSlot, withMeaning, err := namegen.GenerateName(table, []string{"prefix-modifier-root"}, sequence(t, 0, 0, 0))
		require.NoError(t, err)
		without, withoutMeaning, err := namegen.GenerateName(table, []string{"prefix-root"}, sequence(t, 0, 0, 0))
		require.NoError(t, err)

		assert.Equal(t, without, withSlot)
		assert.Equal(t, withoutMeaning, withMeaning)
	})

	t.Run("missing categories give empty output", func(t *testing.T) {
		t.Parallel()
		name, meaning, err := namegen.GenerateName(morpheme.Table{}, []string{"prefix-root-suffix"}, sequence(t, 0))
		require.NoError(t, err)
		assert.Equal(t, "", name)
		assert.Equal(t, "", meaning)
	})

	t.Run("empty catalog is a configuration error", func(t *testing.T) {
		t.Parallel()
		_, _, err := namegen.GenerateName(morpheme.Table{}, nil, sequence(t))
		require.ErrorIs(t, err, morpheme.ErrConfiguration)
		assert.ErrorIs(t, err, namegen.ErrEmptyCatalog)
	})

	t.Run("template choice uses the picker", func(t *testing.T) {
		t.Parallel()
		table := morpheme.Table{
			morpheme.Prefix: {"dun": morpheme.Plain("dark")},
			morpheme.Root:   {"mor": morpheme.Plain("shadow")},
		}
		name, _, err := namegen.GenerateName(table, []string{"prefix-root", "root"}, sequence(t, 1, 0))
		require.NoError(t, err)
		assert.Equal(t, "Mor", name)
	})
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	table := morpheme.Table{
		morpheme.Prefix:   {"dun": morpheme.Plain("dark"), "gil": morpheme.Plain("star"), "ar": morpheme.Plain("noble")},
		morpheme.Root:     {"mor": morpheme.Plain("shadow"), "dor": morpheme.Plain("land"), "ion": morpheme.Plain("son")},
		morpheme.Suffix:   {"wen": morpheme.Plain("maiden"), "iel": morpheme.Plain("daughter")},
		morpheme.Modifier: {"los": morpheme.Plain("snow")},
	}

	t.Run("same seed reproduces names", func(t *testing.T) {
		t.Parallel()
		a, err := namegen.New(&namegen.Options{Seed: 7}).GenerateN(table, 20)
		require.NoError(t, err)
		b, err := namegen.New(&namegen.Options{Seed: 7}).GenerateN(table, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("defaults to built-in catalog", func(t *testing.T) {
		t.Parallel()
		g := namegen.New(nil)
		require.Len(t, g.Templates(), len(namegen.DefaultTemplates))
		assert.Equal(t, namegen.DefaultTemplates[0], g.Templates()[0].String())

		n, err := g.Generate(table)
		require.NoError(t, err)
		assert.NotEmpty(t, n.Text)
		assert.NotEmpty(t, n.Template)
	})

	t.Run("custom picker and catalog", func(t *testing.T) {
		t.Parallel()
		g := namegen.New(&namegen.Options{
			Templates: []string{"root-modifier-suffix"},
			Picker:    namegen.PickerFunc(func(int) int { return 0 }),
		})
		n, err := g.Generate(table)
		require.NoError(t, err)
		assert.Equal(t, namegen.Name{
			Text:     "Dorlosiel",
			Meaning:  "land snow daughter",
			Template: namegen.Template{morpheme.Root, morpheme.Modifier, morpheme.Suffix},
		}, n)
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		t.Parallel()
		_, err := namegen.New(nil).GenerateN(table, 0)
		assert.ErrorIs(t, err, morpheme.ErrConfiguration)
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()
		g := namegen.New(&namegen.Options{Seed: 3})
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					_, err := g.Generate(table)
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()
	})
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tpl := namegen.ParseTemplate("prefix-root-suffix")
	assert.Equal(t, namegen.Template{morpheme.Prefix, morpheme.Root, morpheme.Suffix}, tpl)
	assert.Equal(t, "prefix-root-suffix", tpl.String())

	text, err := tpl.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "prefix-root-suffix", string(text))

	assert.Equal(t, namegen.Template{"root"}, namegen.ParseTemplate("root"))
}

func TestRandPicker(t *testing.T) {
	t.Parallel()

	p := namegen.NewRandPicker(1)
	seen := make(map[int]bool)
	for range 200 {
		i := p.Pick(4)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 4)
		seen[i] = true
	}
	assert.Len(t, seen, 4)
}
