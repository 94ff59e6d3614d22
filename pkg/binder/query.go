package binder

import "net/http"

// Query returns a binder that fills fields tagged `query:"name"` from the
// URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
