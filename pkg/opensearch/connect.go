package opensearch

import (
	"context"
	"errors"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Option adjusts the client configuration before it is built.
type Option func(*opensearch.Config)

// WithTransport replaces the HTTP transport, for tests or custom TLS.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *opensearch.Config) {
		c.Transport = rt
	}
}

// New creates a client and checks that the cluster answers.
func New(ctx context.Context, cfg Config, opts ...Option) (*opensearch.Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, ErrNoAddresses
	}
	ocfg := opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	}
	for _, opt := range opts {
		opt(&ocfg)
	}

	client, err := opensearch.NewClient(ocfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	if err := Healthcheck(client)(ctx); err != nil {
		return nil, err
	}
	return client, nil
}
