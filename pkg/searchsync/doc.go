// Package searchsync mirrors the morpheme search index into OpenSearch.
//
// Sync flattens every handle into one document per (handle, category,
// morpheme) with a deterministic id, so re-running it updates documents in
// place. Search reproduces lexsearch.SearchAll on the cluster: a
// case-insensitive substring match on morpheme text or gloss, with later
// categories shadowing earlier ones for the same morpheme text.
package searchsync
