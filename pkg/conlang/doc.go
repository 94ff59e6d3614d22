// Package conlang loads morpheme tables for constructed languages from a
// pluggable storage Source, layers named subsets (dialects) onto base
// tables, blends several languages into hybrid tables and discovers the
// languages available for search.
//
// # Storage
//
// A Source returns the raw bytes stored under an opaque, path-like key.
// Keys ending in .yaml or .yml are decoded as YAML, everything else as
// JSON. A Resolver maps a language identifier to its key; the default
// PathResolver follows the "<Dir>/<Language>/<Language>.<ext>" layout with
// the language capitalized:
//
//	loader := conlang.NewLoader(source.NewDir("./data"))
//	table, err := loader.LoadLanguage(ctx, "elvish", "dark-elven")
//	// reads Conlangs/Elvish/Elvish.json and the dark-elven subset it declares
//
// # Subsets
//
// A document may declare a "subsets" object mapping subset names to the
// keys of their own documents. Loading with a subset merges the subset
// table onto the base table, subset entries winning. Asking for a subset
// that the document does not declare returns the base table unchanged.
//
// # Hybrids
//
// LoadHybrid merges the tables of several (language, subset) pairs in the
// order given; later pairs win on collisions:
//
//	table, err := loader.LoadHybrid(ctx, []conlang.Pair{
//	    {Language: "elvish", Subset: "sea-elven"},
//	    {Language: "human"},
//	})
//
// Tables are built fresh on every call and are owned by the caller.
//
// # Errors
//
// Missing keys surface as morpheme.ErrNotFound and undecodable content as
// morpheme.ErrMalformedData. Hybrid loading aborts on the first failure.
package conlang
