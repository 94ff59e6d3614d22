// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders
// from pkg/binder, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	http.Handle("/names", handler.Wrap(names,
//		handler.WithBinders[handler.Context, namesRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, namesRequest](errHandler),
//	))
//
// Responses are JSON envelopes of the form {"data": ..., "meta": ..., "error": ...}.
// JSONError derives the status code from the error with Classify: an
// HTTPError anywhere in the chain is used as is, then caller supplied
// ErrorMapping values are tried with errors.Is, then the binder sentinels
// (malformed input is 400, a wrong content type 415).
//
// NewErrorHandler builds an ErrorHandler that logs the failure with the
// request id from pkg/requestid before rendering it.
package handler
