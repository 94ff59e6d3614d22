package conlang

import (
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver maps language identifiers to storage keys and back.
type Resolver interface {
	// LanguageKey returns the key of the base document for language.
	LanguageKey(language string) string
	// ParseKey reports whether key is a base document key and for which language.
	ParseKey(key string) (string, bool)
}

// Default layout used by NewPathResolver.
const (
	DefaultDir = "Conlangs"
	DefaultExt = "json"
)

// PathResolver implements the "<Dir>/<Language>/<Language>.<Ext>" layout.
type PathResolver struct {
	Dir string
	Ext string
}

// NewPathResolver returns a PathResolver; empty arguments fall back to
// DefaultDir and DefaultExt.
func NewPathResolver(dir, ext string) PathResolver {
	if dir == "" {
		dir = DefaultDir
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = DefaultExt
	}
	return PathResolver{Dir: dir, Ext: ext}
}

func (r PathResolver) LanguageKey(language string) string {
	name := Capitalize(language)
	return path.Join(r.Dir, name, name+"."+r.Ext)
}

func (r PathResolver) ParseKey(key string) (string, bool) {
	rel := path.Clean(key)
	if root := path.Clean(r.Dir); root != "." {
		var ok bool
		if rel, ok = strings.CutPrefix(rel, root+"/"); !ok {
			return "", false
		}
	}
	dir, file, ok := strings.Cut(rel, "/")
	if !ok || strings.Contains(file, "/") {
		return "", false
	}
	if file != dir+"."+r.Ext {
		return "", false
	}
	return dir, true
}

// Capitalize title-cases the first rune of s and lower-cases the rest,
// so "elvish" and "ELVISH" both become "Elvish".
func Capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Title(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
