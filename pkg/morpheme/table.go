package morpheme

import (
	"maps"
	"slices"
)

// Category names a morpheme slot such as "prefix" or "root".
type Category string

// Canonical categories. Documents may declare others.
const (
	Prefix   Category = "prefix"
	Root     Category = "root"
	Suffix   Category = "suffix"
	Modifier Category = "modifier"
)

// Categories lists the canonical categories in their processing order.
var Categories = []Category{Prefix, Root, Suffix, Modifier}

// IsCanonical reports whether c is one of Categories.
func (c Category) IsCanonical() bool {
	return slices.Contains(Categories, c)
}

// Morphemes maps morpheme text to its entry within one category.
type Morphemes map[string]Entry

// Keys returns the morpheme texts in ascending order.
func (m Morphemes) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Clone returns a shallow copy. Entries are values, so the copy shares nothing.
func (m Morphemes) Clone() Morphemes {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Table maps each category to its morphemes. A missing category is empty.
type Table map[Category]Morphemes

// NewTable returns a table with the canonical categories declared empty.
func NewTable() Table {
	t := make(Table, len(Categories))
	for _, c := range Categories {
		t[c] = Morphemes{}
	}
	return t
}

// Morphemes returns the entries of category c, or nil when absent.
func (t Table) Morphemes(c Category) Morphemes {
	return t[c]
}

// Categories returns the categories present in t: canonical ones first in
// canonical order, then any others sorted by name.
func (t Table) Categories() []Category {
	out := make([]Category, 0, len(t))
	for _, c := range Categories {
		if _, ok := t[c]; ok {
			out = append(out, c)
		}
	}
	var extra []Category
	for c := range t {
		if !c.IsCanonical() {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// Len returns the total number of entries across all categories.
func (t Table) Len() int {
	n := 0
	for _, m := range t {
		n += len(m)
	}
	return n
}

// Clone returns a copy of t whose category maps are not shared with t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for c, m := range t {
		out[c] = m.Clone()
	}
	return out
}
