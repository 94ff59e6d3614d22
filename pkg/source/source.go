package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
)

// Writer stores raw documents by key, replacing any previous content.
type Writer interface {
	Write(ctx context.Context, key string, data []byte) error
}

// ListSource is a source that can enumerate its keys.
type ListSource interface {
	conlang.Source
	conlang.Lister
}

// Backend is a source that can also be written to.
type Backend interface {
	ListSource
	Writer
}

// Copy reads every document under prefix from src, validates it and writes
// it to dst. Keys that are not JSON or YAML documents are skipped. It
// returns the number of documents copied and stops at the first failure.
func Copy(ctx context.Context, src ListSource, dst Writer, prefix string) (int, error) {
	keys, err := src.Keys(ctx, prefix)
	if err != nil {
		return 0, errors.Join(ErrCopyFailed, err)
	}

	copied := 0
	for _, key := range keys {
		if !IsDocumentKey(key) {
			continue
		}
		data, err := src.Read(ctx, key)
		if err != nil {
			return copied, errors.Join(ErrCopyFailed, fmt.Errorf("%s: %w", key, err))
		}
		if _, err := conlang.DecoderForKey(key)(data); err != nil {
			return copied, errors.Join(ErrCopyFailed, fmt.Errorf("%s: %w", key, err))
		}
		if err := dst.Write(ctx, key, data); err != nil {
			return copied, errors.Join(ErrCopyFailed, err)
		}
		copied++
	}
	return copied, nil
}

// IsDocumentKey reports whether key has a .json, .yaml or .yml extension.
func IsDocumentKey(key string) bool {
	switch strings.ToLower(path.Ext(key)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// normalizeKey cleans key into the slash separated form shared by all
// backends and rejects keys escaping the root.
func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if slices.Contains(strings.Split(key, "/"), "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return key, nil
}

func notFound(key string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", morpheme.ErrNotFound, key)
	}
	return errors.Join(fmt.Errorf("%w: %s", morpheme.ErrNotFound, key), cause)
}

// contextError maps context cancellation to the package sentinels and
// returns nil for any other error.
func contextError(err error, operation string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Join(fmt.Errorf("%w: %s", ErrOperationTimeout, operation), err)
	case errors.Is(err, context.Canceled):
		return errors.Join(fmt.Errorf("%w: %s", ErrOperationCanceled, operation), err)
	}
	return nil
}
