package morpheme

import "maps"

// MergeInto layers additional onto base and returns base.
//
// base is mutated: for each category of additional, entries are copied into
// the matching base category with additional winning on key collision, and
// categories missing from base are inserted by reference. Callers that need
// base or additional unchanged afterwards must use Merge.
func MergeInto(base, additional Table) Table {
	if base == nil {
		base = make(Table, len(additional))
	}
	for c, entries := range additional {
		existing, ok := base[c]
		if !ok || existing == nil {
			base[c] = entries
			continue
		}
		maps.Copy(existing, entries)
	}
	return base
}

// Merge returns a new table holding base layered with additional.
// Neither argument is modified and the result shares no maps with them.
func Merge(base, additional Table) Table {
	out := base.Clone()
	if out == nil {
		out = make(Table, len(additional))
	}
	return MergeInto(out, additional.Clone())
}
