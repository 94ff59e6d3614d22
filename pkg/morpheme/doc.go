// Package morpheme defines the data model shared by the conlang packages:
// morpheme entries, categories, tables and the raw documents they are
// decoded from, plus the merge rules that layer one table onto another.
//
// # Data model
//
// A Table maps a Category (prefix, root, suffix, modifier or any other
// name found in a document) to Morphemes, which map the literal morpheme
// text to an Entry. An Entry is either a plain gloss string or a described
// record carrying a "meaning" field plus arbitrary extra fields. Both
// shapes resolve to a single gloss through Entry.Gloss.
//
// Categories absent from a table are treated as empty:
//
//	t := morpheme.Table{morpheme.Root: {"mor": morpheme.Plain("shadow")}}
//	t.Morphemes(morpheme.Suffix) // nil, not an error
//
// # Merging
//
// Merge layers an additional table onto a base table and returns a new
// table; entries of the additional table win on key collision. MergeInto
// performs the same operation in place and returns the mutated base:
//
//	merged := morpheme.Merge(base, dialect)    // base and dialect untouched
//	base = morpheme.MergeInto(base, dialect)   // base mutated
//
// # Errors
//
// ErrNotFound, ErrMalformedData and ErrConfiguration form the error
// taxonomy used by every package of this module. They are combined with
// more specific errors through errors.Join, so callers test them with
// errors.Is.
package morpheme
