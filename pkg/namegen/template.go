package namegen

import (
	"strings"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// SlotSeparator separates category slots in a template string.
const SlotSeparator = "-"

// DefaultTemplates is the built-in structural catalog.
var DefaultTemplates = []string{
	"prefix-root-suffix",
	"prefix-root",
	"root-suffix",
	"root",
	"prefix-prefix-root",
	"root-suffix-suffix",
	"prefix-modifier-root",
	"root-modifier-suffix",
}

// Template is an ordered sequence of category slots.
type Template []morpheme.Category

// ParseTemplate splits s on SlotSeparator. Every piece becomes a slot,
// including empty or unknown category names, which simply never match.
func ParseTemplate(s string) Template {
	parts := strings.Split(s, SlotSeparator)
	t := make(Template, len(parts))
	for i, p := range parts {
		t[i] = morpheme.Category(p)
	}
	return t
}

// ParseCatalog parses every template string of catalog.
func ParseCatalog(catalog []string) []Template {
	out := make([]Template, len(catalog))
	for i, s := range catalog {
		out[i] = ParseTemplate(s)
	}
	return out
}

func (t Template) String() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = string(c)
	}
	return strings.Join(parts, SlotSeparator)
}

// MarshalText encodes the template in its dash-separated form.
func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the dash-separated form.
func (t *Template) UnmarshalText(text []byte) error {
	*t = ParseTemplate(string(text))
	return nil
}
