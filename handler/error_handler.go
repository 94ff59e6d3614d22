package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/conlang/pkg/binder"
	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/pkg/requestid"
)

// ErrorMapping maps every error matching Target (errors.Is) to HTTP.
type ErrorMapping struct {
	Target error
	HTTP   HTTPError
}

// Map is shorthand for an ErrorMapping literal.
func Map(target error, httpErr HTTPError) ErrorMapping {
	return ErrorMapping{Target: target, HTTP: httpErr}
}

var bindingErrors = []ErrorMapping{
	Map(binder.ErrMissingContentType, ErrUnsupportedMediaType),
	Map(binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType),
	Map(binder.ErrRequestTooLarge, ErrRequestTooLarge),
	Map(binder.ErrFailedToParseJSON, ErrBadRequest),
	Map(binder.ErrFailedToParseQuery, ErrBadRequest),
	Map(binder.ErrFailedToParsePath, ErrBadRequest),
}

// Classify resolves err to an HTTPError. An HTTPError in the chain wins,
// then the first matching mapping, then the binder sentinels. Anything
// else is an internal server error.
func Classify(err error, mappings ...ErrorMapping) HTTPError {
	if err == nil {
		return ErrInternalServerError
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return m.HTTP
		}
	}
	for _, m := range bindingErrors {
		if errors.Is(err, m.Target) {
			return m.HTTP
		}
	}
	return ErrInternalServerError
}

// NewErrorHandler returns an ErrorHandler that logs err at warn level for
// client errors and error level otherwise, then renders it with JSONError.
func NewErrorHandler(log *slog.Logger, mappings ...ErrorMapping) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		httpErr := Classify(err, mappings...)

		level := slog.LevelError
		if httpErr.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("http"),
		)

		resp := JSONError(err, WithErrorMappings(mappings...))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("http"),
			)
		}
	}
}
