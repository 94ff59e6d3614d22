// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores the id in the request context and echoes it in
// the response header. LoggerExtractor plugs the id into pkg/logger so every
// record logged with the request context carries "request_id".
package requestid
