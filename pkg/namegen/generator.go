package namegen

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// GenerateName picks a template from templates and fills its slots from
// table, returning the name and its space-joined meaning. It fails only
// when templates is empty.
func GenerateName(table morpheme.Table, templates []string, picker Picker) (string, string, error) {
	n, err := compose(table, ParseCatalog(templates), picker)
	if err != nil {
		return "", "", err
	}
	return n.Text, n.Meaning, nil
}

// Generator produces names from a fixed template catalog and picker.
// It is safe for concurrent use when its Picker is.
type Generator struct {
	catalog []Template
	picker  Picker
}

// New returns a Generator configured by opts; nil opts uses the defaults.
func New(opts *Options) *Generator {
	o := opts.merge(defaultOptions())

	picker := o.Picker
	if picker == nil {
		if o.Seed != 0 {
			picker = NewRandPicker(o.Seed)
		} else {
			picker = NewTimePicker()
		}
	}

	return &Generator{
		catalog: ParseCatalog(o.Templates),
		picker:  picker,
	}
}

// Templates returns the generator's catalog.
func (g *Generator) Templates() []Template {
	out := make([]Template, len(g.catalog))
	copy(out, g.catalog)
	return out
}

// Generate composes a single name from table.
func (g *Generator) Generate(table morpheme.Table) (Name, error) {
	return compose(table, g.catalog, g.picker)
}

// GenerateN composes n names from table. Duplicates are possible.
func (g *Generator) GenerateN(table morpheme.Table, n int) ([]Name, error) {
	if n <= 0 {
		return nil, errors.Join(morpheme.ErrConfiguration, ErrInvalidCount)
	}
	names := make([]Name, 0, n)
	for range n {
		name, err := compose(table, g.catalog, g.picker)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func compose(table morpheme.Table, catalog []Template, picker Picker) (Name, error) {
	if len(catalog) == 0 {
		return Name{}, errors.Join(morpheme.ErrConfiguration, ErrEmptyCatalog)
	}

	tpl := catalog[picker.Pick(len(catalog))]

	var text strings.Builder
	meanings := make([]string, 0, len(tpl))
	for _, slot := range tpl {
		entries := table[slot]
		if len(entries) == 0 {
			continue
		}
		keys := entries.Keys()
		key := keys[picker.Pick(len(keys))]
		text.WriteString(key)
		meanings = append(meanings, entries[key].Gloss())
	}

	return Name{
		Text:     upperFirst(text.String()),
		Meaning:  strings.Join(meanings, " "),
		Template: tpl,
	}, nil
}

// upperFirst upper-cases the first rune of s and leaves the rest untouched.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
