package lexsearch

import (
	"fmt"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// Handle pairs a display name with a fully merged table.
// Handles are built once and must not be mutated afterwards.
type Handle struct {
	Name     string
	Language string
	Subset   string
	Table    morpheme.Table
}

// NewHandle builds a handle named after the language and optional subset.
func NewHandle(language, subset string, table morpheme.Table) Handle {
	return Handle{
		Name:     DisplayName(language, subset),
		Language: language,
		Subset:   subset,
		Table:    table,
	}
}

// DisplayName formats "<language>" or "<language> (<subset>)".
func DisplayName(language, subset string) string {
	if subset == "" {
		return language
	}
	return fmt.Sprintf("%s (%s)", language, subset)
}
