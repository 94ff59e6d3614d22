// Package opensearch builds the OpenSearch client used to mirror morpheme
// glosses into a full-text index.
//
// New validates the configuration and performs an initial Healthcheck so a
// misconfigured cluster fails at startup rather than on the first sync:
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//	    // errors.Is(err, opensearch.ErrHealthcheckFailed)
//	}
//	indexer := searchsync.New(client, cfg.Index)
//
// Configuration is read from CONLANG_OPENSEARCH_* environment variables.
package opensearch
