// Package namegen composes names and their glossed meanings from a
// morpheme table and a catalog of structural templates.
//
// A template is an ordered list of category slots written as a single
// dash-separated string, e.g. "prefix-root-suffix". Generation picks one
// template uniformly at random, then one entry uniformly at random for each
// slot, and concatenates the morpheme texts into the name and the glosses
// into the meaning:
//
//	table := morpheme.Table{
//	    morpheme.Prefix: {"dun": morpheme.Plain("dark")},
//	    morpheme.Root:   {"mor": morpheme.Plain("shadow")},
//	}
//	name, meaning, err := namegen.GenerateName(table, []string{"prefix-root"}, namegen.NewRandPicker(1))
//	// name == "Dunmor", meaning == "dark shadow"
//
// # Tolerance
//
// A slot whose category is absent from the table, or present with no
// entries, is skipped: it contributes nothing to the name or the meaning.
// A template may therefore produce a shorter or even empty name. There are
// no retries, no uniqueness guarantees and no pronounceability checks.
//
// # Casing
//
// The first rune of the concatenated name is upper-cased and the rest is
// left untouched: "ab" + "Cd" gives "AbCd".
//
// # Randomness
//
// Every random choice goes through a Picker. NewRandPicker wraps a seeded
// math/rand/v2 generator and is safe for concurrent use; tests can supply
// their own Picker to force specific choices. Entries of a category are
// ordered by morpheme text before picking so a seeded picker always
// reproduces the same names for the same table.
//
// # Generator
//
// Generator bundles a template catalog and a picker:
//
//	g := namegen.New(&namegen.Options{Seed: 42})
//	n, err := g.Generate(table)
//	names, err := g.GenerateN(table, 10)
//
// The default catalog is DefaultTemplates.
package namegen
