package conlang

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// Pair names a language and an optional subset for hybrid loading.
type Pair struct {
	Language string `json:"language"`
	Subset   string `json:"subset,omitempty"`
}

// Loader builds morpheme tables from a Source.
// It holds no table state and is safe for concurrent use.
type Loader struct {
	source   Source
	resolver Resolver
}

// Option configures a Loader.
type Option func(*Loader)

// WithResolver replaces the default PathResolver.
func WithResolver(r Resolver) Option {
	return func(l *Loader) {
		if r != nil {
			l.resolver = r
		}
	}
}

// NewLoader returns a Loader reading from src.
func NewLoader(src Source, opts ...Option) *Loader {
	l := &Loader{
		source:   src,
		resolver: NewPathResolver("", ""),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolver returns the resolver used for language keys.
func (l *Loader) Resolver() Resolver {
	return l.resolver
}

// LoadDocument reads and decodes the document stored under key, subset
// index included.
func (l *Loader) LoadDocument(ctx context.Context, key string) (*morpheme.Document, error) {
	data, err := l.source.Read(ctx, key)
	if err != nil {
		if errors.Is(err, morpheme.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return nil, errors.Join(ErrReadFailed, fmt.Errorf("%s: %w", key, err))
	}
	doc, err := DecoderForKey(key)(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return doc, nil
}

// LoadConlang loads the table stored under baseKey and, when subset is
// declared in its subset index, merges the subset table onto it. An
// undeclared subset returns the base table unchanged.
func (l *Loader) LoadConlang(ctx context.Context, baseKey, subset string) (morpheme.Table, error) {
	doc, err := l.LoadDocument(ctx, baseKey)
	if err != nil {
		return nil, err
	}
	if subset == "" {
		return doc.Table, nil
	}

	subsetKey, ok := doc.SubsetKey(subset)
	if !ok {
		return doc.Table, nil
	}
	sub, err := l.LoadDocument(ctx, subsetKey)
	if err != nil {
		return nil, err
	}
	return morpheme.MergeInto(doc.Table, sub.Table), nil
}

// LoadLanguage resolves the key for language and calls LoadConlang.
func (l *Loader) LoadLanguage(ctx context.Context, language, subset string) (morpheme.Table, error) {
	return l.LoadConlang(ctx, l.resolver.LanguageKey(language), subset)
}

// LoadHybrid merges the tables of pairs in order onto a table with the
// canonical categories declared empty. Later pairs win on collisions.
// The first failing pair aborts the whole composition.
func (l *Loader) LoadHybrid(ctx context.Context, pairs []Pair) (morpheme.Table, error) {
	combined := morpheme.NewTable()
	for _, p := range pairs {
		table, err := l.LoadLanguage(ctx, p.Language, p.Subset)
		if err != nil {
			return nil, err
		}
		combined = morpheme.MergeInto(combined, table)
	}
	return combined, nil
}
