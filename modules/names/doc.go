// Package names exposes name generation and morpheme search over HTTP.
//
//	GET  /languages                       available languages and the template catalog
//	GET  /names?language=&subset=&count=  generated names
//	GET  /languages/{language}/names      same, language in the path
//	POST /names/hybrid                    names from a hybrid of languages
//	GET  /search?q=[&language=&subset=]   morpheme search
//	GET  /health/live, /health/ready      probes
//
// Every response is a JSON envelope {"data": ..., "error": ...}. Missing
// languages map to 404, malformed documents to 422 and invalid requests
// to 400.
package names
