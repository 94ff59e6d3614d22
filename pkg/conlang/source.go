package conlang

import "context"

// Source reads raw documents by key. Implementations must be safe for
// concurrent reads and return an error matching morpheme.ErrNotFound when
// the key does not exist.
type Source interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// Lister is implemented by sources that can enumerate their keys.
type Lister interface {
	// Keys returns every key under prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, key string) ([]byte, error)

func (f SourceFunc) Read(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}
