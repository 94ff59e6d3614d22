package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status   int
	body     JSONResponse
	mappings []ErrorMapping
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the response status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta attaches metadata to the envelope.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithErrorMappings adds sentinel mappings consulted by JSONError.
func WithErrorMappings(mappings ...ErrorMapping) JSONOption {
	return func(r *jsonResponse) {
		r.mappings = append(r.mappings, mappings...)
	}
}

// JSON renders v as the envelope's data with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r
}

// JSONError renders err as the envelope's error. The status and code come
// from Classify unless WithJSONStatus overrides the status. Messages of
// server errors are replaced by the status text.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	for _, opt := range opts {
		opt(r)
	}

	httpErr := Classify(err, r.mappings...)
	if r.status == 0 {
		r.status = httpErr.Code
	}
	r.body.Error = &ErrorDetail{
		Code:    httpErr.Key,
		Message: errorMessage(err, r.status),
	}
	return r
}

func errorMessage(err error, status int) string {
	if err == nil || status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
