package lexsearch

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// Match is a single search hit.
type Match struct {
	Category morpheme.Category `json:"category"`
	Key      string            `json:"key"`
	Gloss    string            `json:"gloss"`
}

type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.term = m.fold.String(term)
	return m
}

func (m *matcher) match(key string, e morpheme.Entry) bool {
	return strings.Contains(m.fold.String(key), m.term) ||
		strings.Contains(m.fold.String(e.Gloss()), m.term)
}

// Search returns morpheme text → gloss for every entry of table whose text
// or gloss contains term, ignoring case. A text present in several
// categories maps to the gloss of the last category in processing order.
func Search(table morpheme.Table, term string) map[string]string {
	m := newMatcher(term)
	results := make(map[string]string)
	for _, c := range table.Categories() {
		for key, e := range table[c] {
			if m.match(key, e) {
				results[key] = e.Gloss()
			}
		}
	}
	return results
}

// SearchAll runs Search on every handle and keeps the non-empty results,
// keyed by handle name.
func SearchAll(handles []Handle, term string) map[string]map[string]string {
	results := make(map[string]map[string]string)
	for _, h := range handles {
		if found := Search(h.Table, term); len(found) > 0 {
			results[h.Name] = found
		}
	}
	return results
}

// Find returns every matching entry with its category, without shadowing,
// ordered by category processing order and then by morpheme text.
func Find(table morpheme.Table, term string) []Match {
	m := newMatcher(term)
	var out []Match
	for _, c := range table.Categories() {
		start := len(out)
		for key, e := range table[c] {
			if m.match(key, e) {
				out = append(out, Match{Category: c, Key: key, Gloss: e.Gloss()})
			}
		}
		slices.SortFunc(out[start:], func(a, b Match) int {
			return cmp.Compare(a.Key, b.Key)
		})
	}
	return out
}
