package conlang

import (
	"context"
	"errors"

	"github.com/dmitrymomot/conlang/pkg/lexsearch"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// Languages lists the languages whose base documents exist in the source,
// in key order. The source must implement Lister.
func (l *Loader) Languages(ctx context.Context) ([]string, error) {
	lister, ok := l.source.(Lister)
	if !ok {
		return nil, ErrListingUnsupported
	}
	keys, err := lister.Keys(ctx, "")
	if err != nil {
		return nil, errors.Join(ErrListingFailed, err)
	}
	var languages []string
	for _, key := range keys {
		if lang, ok := l.resolver.ParseKey(key); ok {
			languages = append(languages, lang)
		}
	}
	return languages, nil
}

// Discover builds one search handle per available language and one per
// loadable subset of it, named "<Language>" and "<Language> (<subset>)".
// When no languages are given they are listed from the source. Languages
// and subsets whose documents are missing are skipped; any other failure
// aborts discovery.
func (l *Loader) Discover(ctx context.Context, languages ...string) ([]lexsearch.Handle, error) {
	if len(languages) == 0 {
		var err error
		if languages, err = l.Languages(ctx); err != nil {
			return nil, err
		}
	}

	var handles []lexsearch.Handle
	for _, lang := range languages {
		doc, err := l.LoadDocument(ctx, l.resolver.LanguageKey(lang))
		if errors.Is(err, morpheme.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		name := Capitalize(lang)
		handles = append(handles, lexsearch.NewHandle(name, "", doc.Table))

		for _, subset := range doc.SubsetNames() {
			key, _ := doc.SubsetKey(subset)
			sub, err := l.LoadDocument(ctx, key)
			if errors.Is(err, morpheme.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			handles = append(handles, lexsearch.NewHandle(name, subset, morpheme.Merge(doc.Table, sub.Table)))
		}
	}
	return handles, nil
}
