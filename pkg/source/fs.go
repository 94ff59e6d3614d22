package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FS reads documents from an fs.FS such as os.DirFS or embed.FS.
// It is safe for concurrent use if the underlying filesystem is.
type FS struct {
	fsys fs.FS
}

// NewFS returns a read-only source over fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

func (s *FS) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(key, err)
		}
		return nil, err
	}
	return data, nil
}

func (s *FS) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(p, prefix) {
			keys = append(keys, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

// Dir is a writable FS rooted at a local directory.
type Dir struct {
	*FS
	root string
}

// NewDir returns a source over the directory root.
func NewDir(root string) *Dir {
	return &Dir{FS: NewFS(os.DirFS(root)), root: root}
}

// Write stores data under key, creating parent directories as needed.
func (d *Dir) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	name := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return errors.Join(ErrWriteFailed, fmt.Errorf("%s: %w", key, err))
	}
	return nil
}
