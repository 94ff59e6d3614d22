package conlang

import (
	"context"
	"errors"
	"strings"

	lang "github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/lexsearch"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/namegen"
)

// DefaultMaxNames caps GenerateN.
const DefaultMaxNames = 100

// Request selects the morpheme table names are generated from.
type Request struct {
	Language string      `json:"language,omitempty"`
	Subset   string      `json:"subset,omitempty"`
	Hybrid   []lang.Pair `json:"hybrid,omitempty"`
}

// SearchIndex answers SearchAll-shaped queries from an external index.
type SearchIndex interface {
	Search(ctx context.Context, term string) (map[string]map[string]string, error)
}

// Service generates names and searches morphemes.
// It is safe for concurrent use.
type Service struct {
	loader    *lang.Loader
	generator *namegen.Generator
	languages []string
	index     SearchIndex
	maxNames  int
}

// Option configures a Service.
type Option func(*Service)

// WithGenerator replaces the default generator.
func WithGenerator(g *namegen.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithSeed seeds the default generator for reproducible output.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.generator = namegen.New(&namegen.Options{Seed: seed})
	}
}

// WithLanguages fixes the languages used by Languages, Handles and Search
// instead of listing them from the source.
func WithLanguages(languages ...string) Option {
	return func(s *Service) {
		s.languages = append(s.languages[:0], languages...)
	}
}

// WithSearchIndex answers Search from idx instead of scanning tables.
func WithSearchIndex(idx SearchIndex) Option {
	return func(s *Service) {
		s.index = idx
	}
}

// WithMaxNames changes the GenerateN limit.
func WithMaxNames(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxNames = n
		}
	}
}

// New returns a Service reading tables through loader.
func New(loader *lang.Loader, opts ...Option) *Service {
	s := &Service{
		loader:   loader,
		maxNames: DefaultMaxNames,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = namegen.New(nil)
	}
	return s
}

// Table loads the morpheme table selected by req.
func (s *Service) Table(ctx context.Context, req Request) (morpheme.Table, error) {
	if len(req.Hybrid) > 0 {
		return s.loader.LoadHybrid(ctx, req.Hybrid)
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		return nil, errors.Join(morpheme.ErrConfiguration, ErrLanguageRequired)
	}
	return s.loader.LoadLanguage(ctx, language, strings.TrimSpace(req.Subset))
}

// Generate composes one name for req.
func (s *Service) Generate(ctx context.Context, req Request) (namegen.Name, error) {
	table, err := s.Table(ctx, req)
	if err != nil {
		return namegen.Name{}, err
	}
	return s.generator.Generate(table)
}

// GenerateN composes n names for req from a single table load.
func (s *Service) GenerateN(ctx context.Context, req Request, n int) ([]namegen.Name, error) {
	if n > s.maxNames {
		return nil, errors.Join(morpheme.ErrConfiguration, ErrTooManyNames)
	}
	if n <= 0 {
		return nil, errors.Join(morpheme.ErrConfiguration, namegen.ErrInvalidCount)
	}
	table, err := s.Table(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateN(table, n)
}

// Templates returns the generator's catalog.
func (s *Service) Templates() []namegen.Template {
	return s.generator.Templates()
}

// Languages returns the configured languages, or those listed by the source.
func (s *Service) Languages(ctx context.Context) ([]string, error) {
	if len(s.languages) > 0 {
		out := make([]string, len(s.languages))
		copy(out, s.languages)
		return out, nil
	}
	return s.loader.Languages(ctx)
}

// Handles discovers one search handle per language and loadable subset.
func (s *Service) Handles(ctx context.Context) ([]lexsearch.Handle, error) {
	return s.loader.Discover(ctx, s.languages...)
}

// Search finds term in every handle, keyed by handle name then morpheme
// text. It uses the search index when one is configured.
func (s *Service) Search(ctx context.Context, term string) (map[string]map[string]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.Join(morpheme.ErrConfiguration, ErrEmptyTerm)
	}
	if s.index != nil {
		return s.index.Search(ctx, term)
	}
	handles, err := s.Handles(ctx)
	if err != nil {
		return nil, err
	}
	return lexsearch.SearchAll(handles, term), nil
}

// Find lists every match for term in the table selected by req, with
// categories and without shadowing.
func (s *Service) Find(ctx context.Context, req Request, term string) ([]lexsearch.Match, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.Join(morpheme.ErrConfiguration, ErrEmptyTerm)
	}
	table, err := s.Table(ctx, req)
	if err != nil {
		return nil, err
	}
	return lexsearch.Find(table, term), nil
}
