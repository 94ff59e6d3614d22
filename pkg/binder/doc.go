// Package binder fills request structs from JSON bodies, query strings and
// path parameters.
//
// Every binder has the signature func(r *http.Request, v any) error and reads
// only its own struct tag, so several binders can be applied to the same
// value in order:
//
//	type namesRequest struct {
//		Language string `query:"language"`
//		Subset   string `query:"subset"`
//		Count    int    `query:"count"`
//	}
//
//	h := handler.Wrap(names, handler.WithBinders[handler.Context, namesRequest](
//		binder.Query(),
//	))
//
// Query and path binders support strings, signed and unsigned integers,
// floats, booleans, pointers to those for optional values, and slices for
// repeated or comma-separated parameters. Fields without a tag bind to their
// lower-cased name; a "-" tag skips the field.
//
// Binding failures wrap one of the package sentinels (ErrFailedToParseJSON,
// ErrFailedToParseQuery, ErrFailedToParsePath, ErrUnsupportedMediaType,
// ErrMissingContentType, ErrRequestTooLarge) so error handlers can map them
// to 4xx responses with errors.Is.
package binder
