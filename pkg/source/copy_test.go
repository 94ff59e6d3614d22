package source_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/source"
)

func TestCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("copies documents only", func(t *testing.T) {
		t.Parallel()
		src := source.NewFS(fstest.MapFS{
			"Conlangs/Elvish/Elvish.json":       {Data: []byte(`{"root": {"mor": "shadow"}, "subsets": {"dark": "Conlangs/Elvish/Subsets/Dark.yaml"}}`)},
			"Conlangs/Elvish/Subsets/Dark.yaml": {Data: []byte("root:\n  mor: night\n")},
			"Conlangs/README.md":                {Data: []byte("notes")},
			"Other/Ignored/Ignored.json":        {Data: []byte(`{}`)},
		})
		dst := source.NewDir(t.TempDir())

		n, err := source.Copy(ctx, src, dst, "Conlangs/")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		keys, err := dst.Keys(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Conlangs/Elvish/Elvish.json", "Conlangs/Elvish/Subsets/Dark.yaml"}, keys)

		table, err := conlang.NewLoader(dst).LoadLanguage(ctx, "elvish", "dark")
		require.NoError(t, err)
		assert.Equal(t, "night", table[morpheme.Root]["mor"].Gloss())
	})

	t.Run("stops on malformed document", func(t *testing.T) {
		t.Parallel()
		src := source.NewFS(fstest.MapFS{
			"A/A.json": {Data: []byte(`{}`)},
			"B/B.json": {Data: []byte(`{"root": 1}`)},
			"C/C.json": {Data: []byte(`{}`)},
		})
		dst := source.NewDir(t.TempDir())

		n, err := source.Copy(ctx, src, dst, "")
		assert.Equal(t, 1, n)
		assert.ErrorIs(t, err, source.ErrCopyFailed)
		assert.ErrorIs(t, err, morpheme.ErrMalformedData)
	})
}

func TestIsDocumentKey(t *testing.T) {
	t.Parallel()

	assert.True(t, source.IsDocumentKey("a/b.json"))
	assert.True(t, source.IsDocumentKey("a/b.YAML"))
	assert.True(t, source.IsDocumentKey("a/b.yml"))
	assert.False(t, source.IsDocumentKey("a/b.md"))
	assert.False(t, source.IsDocumentKey("a/json"))
}
