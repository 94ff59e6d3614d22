// Package clientip resolves the address of the client behind an HTTP
// request.
//
// By default only the connection address is used. Forwarding headers
// (X-Forwarded-For, X-Real-IP) are honored only for requests arriving from
// a configured trusted proxy, so clients cannot pick their own address:
//
//	proxies, err := clientip.ParsePrefixes([]string{"10.0.0.0/8"})
//	r.Use(clientip.NewResolver(proxies...).Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
