package clientip

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type contextKey struct{}

// Resolver determines the client address of a request. Forwarding headers
// are only honored when the connection comes from a trusted proxy.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver returns a resolver trusting the given proxy networks. With
// no networks it always uses the connection address.
func NewResolver(trusted ...netip.Prefix) *Resolver {
	return &Resolver{trusted: trusted}
}

// ParsePrefixes parses CIDRs or bare addresses such as "10.0.0.0/8" and
// "127.0.0.1".
func ParsePrefixes(values []string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, v)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, v)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// FromRequest returns the normalized client address, or "" when none is
// valid.
//
// When the peer is a trusted proxy, X-Forwarded-For is walked from the
// right and the first address that is not itself a trusted proxy wins;
// X-Real-IP is used when X-Forwarded-For is absent. Otherwise the peer
// address is returned and the headers are ignored.
func (rv *Resolver) FromRequest(r *http.Request) string {
	peer, ok := remoteAddr(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !rv.isTrusted(peer) {
		return peer.String()
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := parse(hops[i])
			if err != nil {
				// An unparsable hop means the chain cannot be trusted further left.
				break
			}
			if !rv.isTrusted(addr) {
				return addr.String()
			}
		}
	}
	if addr, err := parse(r.Header.Get("X-Real-IP")); err == nil {
		return addr.String()
	}
	return peer.String()
}

// Middleware stores the resolved address in the request context.
func (rv *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), rv.FromRequest(r))))
	})
}

func (rv *Resolver) isTrusted(addr netip.Addr) bool {
	for _, p := range rv.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

var direct = NewResolver()

// FromRequest returns the connection address, ignoring forwarding headers.
func FromRequest(r *http.Request) string {
	return direct.FromRequest(r)
}

// Middleware stores the connection address in the request context.
func Middleware(next http.Handler) http.Handler {
	return direct.Middleware(next)
}

// WithContext returns ctx carrying ip.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor exposes the address as a "client_ip" log attribute.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}

func remoteAddr(s string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(s)
	if err != nil {
		host = s
	}
	addr, err := parse(host)
	return addr, err == nil
}

func parse(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, err
	}
	return addr.Unmap(), nil
}
