package names

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/conlang/handler"
	"github.com/dmitrymomot/conlang/pkg/binder"
	lang "github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/lexsearch"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/namegen"
	"github.com/dmitrymomot/conlang/pkg/source"
	"github.com/dmitrymomot/conlang/svc/conlang"
)

// Service is the subset of conlang.Service the module calls.
type Service interface {
	GenerateN(ctx context.Context, req conlang.Request, n int) ([]namegen.Name, error)
	Languages(ctx context.Context) ([]string, error)
	Templates() []namegen.Template
	Search(ctx context.Context, term string) (map[string]map[string]string, error)
	Find(ctx context.Context, req conlang.Request, term string) ([]lexsearch.Match, error)
}

// ErrorMappings maps the morpheme and source sentinels to HTTP errors.
var ErrorMappings = []handler.ErrorMapping{
	handler.Map(morpheme.ErrNotFound, handler.ErrNotFound),
	handler.Map(morpheme.ErrMalformedData, handler.ErrUnprocessableEntity),
	handler.Map(morpheme.ErrConfiguration, handler.ErrBadRequest),
	handler.Map(source.ErrInvalidKey, handler.ErrBadRequest),
}

// Module serves the names API.
type Module struct {
	svc          Service
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewModule returns a Module backed by svc. Errors are logged to log.
func NewModule(svc Service, log *slog.Logger) *Module {
	return &Module{
		svc:          svc,
		errorHandler: handler.NewErrorHandler(log, ErrorMappings...),
	}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/languages", handler.Wrap(m.languages,
		handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
	))
	r.Get("/names", handler.Wrap(m.names,
		handler.WithBinders[handler.Context, NamesRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, NamesRequest](m.errorHandler),
	))
	r.Get("/languages/{language}/names", handler.Wrap(m.languageNames,
		handler.WithBinders[handler.Context, LanguageNamesRequest](binder.Query(), binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, LanguageNamesRequest](m.errorHandler),
	))
	r.Post("/names/hybrid", handler.Wrap(m.hybrid,
		handler.WithBinders[handler.Context, HybridRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, HybridRequest](m.errorHandler),
	))
	r.Get("/search", handler.Wrap(m.search,
		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, SearchRequest](m.errorHandler),
	))

	return r
}

// LanguagesResponse lists what the generator can draw from.
type LanguagesResponse struct {
	Languages []string           `json:"languages"`
	Templates []namegen.Template `json:"templates"`
}

func (m *Module) languages(ctx handler.Context, _ struct{}) handler.Response {
	langs, err := m.svc.Languages(ctx)
	if err != nil {
		return m.fail(err)
	}
	if langs == nil {
		langs = []string{}
	}
	return handler.JSON(LanguagesResponse{
		Languages: langs,
		Templates: m.svc.Templates(),
	})
}

// NamesRequest generates names for one language.
type NamesRequest struct {
	Language string `query:"language"`
	Subset   string `query:"subset"`
	Count    int    `query:"count"`
}

func (m *Module) names(ctx handler.Context, req NamesRequest) handler.Response {
	out, err := m.svc.GenerateN(ctx, conlang.Request{
		Language: req.Language,
		Subset:   req.Subset,
	}, countOrDefault(req.Count))
	if err != nil {
		return m.fail(err)
	}
	return handler.JSON(out, handler.WithJSONMeta(map[string]any{"count": len(out)}))
}

// LanguageNamesRequest is NamesRequest with the language in the path.
type LanguageNamesRequest struct {
	Language string `path:"language" query:"-"`
	Subset   string `query:"subset" path:"-"`
	Count    int    `query:"count" path:"-"`
}

func (m *Module) languageNames(ctx handler.Context, req LanguageNamesRequest) handler.Response {
	return m.names(ctx, NamesRequest(req))
}

// HybridRequest generates names from several languages merged in order.
type HybridRequest struct {
	Pairs []lang.Pair `json:"pairs"`
	Count int         `json:"count,omitempty"`
}

func (m *Module) hybrid(ctx handler.Context, req HybridRequest) handler.Response {
	if len(req.Pairs) == 0 {
		return m.fail(handler.ErrBadRequest)
	}
	out, err := m.svc.GenerateN(ctx, conlang.Request{Hybrid: req.Pairs}, countOrDefault(req.Count))
	if err != nil {
		return m.fail(err)
	}
	return handler.JSON(out, handler.WithJSONMeta(map[string]any{"count": len(out)}))
}

// SearchRequest searches every language, or a single table when Language
// is set.
type SearchRequest struct {
	Term     string `query:"q"`
	Language string `query:"language"`
	Subset   string `query:"subset"`
}

func (m *Module) search(ctx handler.Context, req SearchRequest) handler.Response {
	if req.Language != "" {
		matches, err := m.svc.Find(ctx, conlang.Request{Language: req.Language, Subset: req.Subset}, req.Term)
		if err != nil {
			return m.fail(err)
		}
		if matches == nil {
			matches = []lexsearch.Match{}
		}
		return handler.JSON(matches)
	}

	results, err := m.svc.Search(ctx, req.Term)
	if err != nil {
		return m.fail(err)
	}
	return handler.JSON(results)
}

// fail defers to the error handler so failures are logged once and
// rendered with the module's mappings.
func (m *Module) fail(err error) handler.Response {
	return errorResponse{err: err, handle: m.errorHandler}
}

type errorResponse struct {
	err    error
	handle handler.ErrorHandler[handler.Context]
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	e.handle(handler.NewContext(w, r), e.err)
	return nil
}

func countOrDefault(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
