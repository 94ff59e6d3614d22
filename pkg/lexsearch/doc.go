// Package lexsearch finds morpheme entries whose text or gloss contains a
// query term, either in a single table or across a set of language handles.
//
// Matching is a case-insensitive substring test (Unicode case folding via
// golang.org/x/text/cases) against both the morpheme text and its resolved
// gloss. Search returns a map keyed by morpheme text; when the same text
// appears in more than one category the category processed last wins.
// Categories are processed in canonical order (prefix, root, suffix,
// modifier) followed by any other categories sorted by name. Find returns
// every match with its category when shadowing is not wanted.
//
//	handles := []lexsearch.Handle{
//	    lexsearch.NewHandle("Elvish", "", elvish),
//	    lexsearch.NewHandle("Elvish", "dark-elven", darkElvish),
//	}
//	results := lexsearch.SearchAll(handles, "shadow")
//	// map["Elvish"]["mor"] == "shadow", ...
package lexsearch
