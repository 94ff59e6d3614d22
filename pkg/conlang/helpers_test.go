package conlang_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// memSource is an in-memory Source and Lister keyed by path.
type memSource struct {
	docs  map[string]string
	reads []string
	fail  map[string]error
}

func (m *memSource) Read(_ context.Context, key string) ([]byte, error) {
	m.reads = append(m.reads, key)
	if err, ok := m.fail[key]; ok {
		return nil, err
	}
	doc, ok := m.docs[key]
	if !ok {
		return nil, morpheme.ErrNotFound
	}
	return []byte(doc), nil
}

func (m *memSource) Keys(_ context.Context, prefix string) ([]string, error) {
	if err, ok := m.fail["*"]; ok {
		return nil, err
	}
	var keys []string
	for _, k := range slices.Sorted(maps.Keys(m.docs)) {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

var errBoom = errors.New("boom")

func fixtures() *memSource {
	return &memSource{docs: map[string]string{
		"Conlangs/Elvish/Elvish.json": `{
			"prefix": {"dun": "dark", "gil": "star"},
			"root": {"mor": {"meaning": "shadow", "notes": "old"}, "dor": "land"},
			"suffix": {"ion": "son"},
			"subsets": {
				"dark-elven": "Conlangs/Elvish/Subsets/DarkElven.json",
				"sea-elven": "Conlangs/Elvish/Subsets/SeaElven.yaml",
				"lost-elven": "Conlangs/Elvish/Subsets/Lost.json"
			}
		}`,
		"Conlangs/Elvish/Subsets/DarkElven.json": `{
			"root": {"mor": "blackness", "morn": "night"},
			"modifier": {"ur": "fire"}
		}`,
		"Conlangs/Elvish/Subsets/SeaElven.yaml": "root:\n  mor: deep\n  gaer: sea\n",
		"Conlangs/Human/Human.json": `{
			"prefix": {"ald": "old"},
			"root": {"mor": "moor", "wyn": "joy"}
		}`,
		"Conlangs/Dwarvish/Dwarvish.yaml": "root:\n  khaz: dwarf\n",
		"Conlangs/Broken/Broken.json":     `{"root": ["not", "a", "map"]}`,
		"Conlangs/README.md":              "not a language",
	}}
}
