package searchsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/conlang/pkg/lexsearch"
)

const (
	// DefaultIndex is used when New receives an empty index name.
	DefaultIndex = "conlang-morphemes"

	defaultBatchSize  = 500
	defaultMaxResults = 10000
)

const indexMapping = `{
  "mappings": {
    "properties": {
      "handle":   {"type": "keyword"},
      "language": {"type": "keyword"},
      "subset":   {"type": "keyword"},
      "category": {"type": "keyword"},
      "rank":     {"type": "integer"},
      "key":      {"type": "keyword"},
      "gloss":    {"type": "keyword"}
    }
  }
}`

// Indexer writes handles to an index and queries it.
type Indexer struct {
	client     *opensearch.Client
	index      string
	batchSize  int
	maxResults int
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithBatchSize sets how many documents go into one bulk request.
func WithBatchSize(n int) Option {
	return func(i *Indexer) {
		if n > 0 {
			i.batchSize = n
		}
	}
}

// WithMaxResults caps the number of hits read by Search.
func WithMaxResults(n int) Option {
	return func(i *Indexer) {
		if n > 0 {
			i.maxResults = n
		}
	}
}

// New returns an Indexer writing to index.
func New(client *opensearch.Client, index string, opts ...Option) *Indexer {
	if index == "" {
		index = DefaultIndex
	}
	i := &Indexer{
		client:     client,
		index:      index,
		batchSize:  defaultBatchSize,
		maxResults: defaultMaxResults,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Index returns the index name.
func (i *Indexer) Index() string {
	return i.index
}

// EnsureIndex creates the index with its mapping when it does not exist.
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	res, err := i.client.Indices.Exists([]string{i.index}, i.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	closeBody(res)
	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return errors.Join(ErrIndexFailed, fmt.Errorf("exists: status %s", res.Status()))
	}

	res, err = i.client.Indices.Create(i.index,
		i.client.Indices.Create.WithContext(ctx),
		i.client.Indices.Create.WithBody(strings.NewReader(indexMapping)),
	)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer closeBody(res)
	if res.IsError() {
		return errors.Join(ErrIndexFailed, responseError(res))
	}
	return nil
}

// Reset deletes the index. A missing index is not an error.
func (i *Indexer) Reset(ctx context.Context) error {
	res, err := i.client.Indices.Delete([]string{i.index}, i.client.Indices.Delete.WithContext(ctx))
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer closeBody(res)
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return errors.Join(ErrIndexFailed, responseError(res))
	}
	return nil
}

// Sync indexes every morpheme of handles and returns the number of
// documents written. The index is created first when missing.
func (i *Indexer) Sync(ctx context.Context, handles []lexsearch.Handle) (int, error) {
	if err := i.EnsureIndex(ctx); err != nil {
		return 0, err
	}

	docs := Documents(handles)
	written := 0
	for start := 0; start < len(docs); start += i.batchSize {
		batch := docs[start:min(start+i.batchSize, len(docs))]
		if err := i.bulk(ctx, batch); err != nil {
			return written, err
		}
		written += len(batch)
	}

	res, err := i.client.Indices.Refresh(
		i.client.Indices.Refresh.WithContext(ctx),
		i.client.Indices.Refresh.WithIndex(i.index),
	)
	if err != nil {
		return written, errors.Join(ErrBulkFailed, err)
	}
	closeBody(res)
	return written, nil
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error,omitempty"`
	} `json:"items"`
}

func (i *Indexer) bulk(ctx context.Context, docs []Document) error {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, d := range docs {
		action := map[string]any{"index": map[string]string{"_id": d.ID()}}
		if err := enc.Encode(action); err != nil {
			return errors.Join(ErrBulkFailed, err)
		}
		if err := enc.Encode(d); err != nil {
			return errors.Join(ErrBulkFailed, err)
		}
	}

	res, err := i.client.Bulk(&body,
		i.client.Bulk.WithContext(ctx),
		i.client.Bulk.WithIndex(i.index),
	)
	if err != nil {
		return errors.Join(ErrBulkFailed, err)
	}
	defer closeBody(res)
	if res.IsError() {
		return errors.Join(ErrBulkFailed, responseError(res))
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return errors.Join(ErrBulkFailed, err)
	}
	if !parsed.Errors {
		return nil
	}
	for _, item := range parsed.Items {
		for _, result := range item {
			if result.Error != nil {
				return errors.Join(ErrBulkFailed, fmt.Errorf("%s: %s", result.Error.Type, result.Error.Reason))
			}
		}
	}
	return ErrBulkFailed
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search returns handle name → morpheme text → gloss for every indexed
// morpheme whose text or gloss contains term, ignoring case.
func (i *Indexer) Search(ctx context.Context, term string) (map[string]map[string]string, error) {
	pattern := "*" + escapeWildcard(term) + "*"
	query := map[string]any{
		"size": i.maxResults,
		"query": map[string]any{
			"bool": map[string]any{
				"should": []any{
					map[string]any{"wildcard": map[string]any{"key": map[string]any{"value": pattern, "case_insensitive": true}}},
					map[string]any{"wildcard": map[string]any{"gloss": map[string]any{"value": pattern, "case_insensitive": true}}},
				},
				"minimum_should_match": 1,
			},
		},
		"sort": []any{
			map[string]any{"rank": "asc"},
			map[string]any{"key": "asc"},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}

	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(i.index),
		i.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}
	defer closeBody(res)
	if res.IsError() {
		return nil, errors.Join(ErrSearchFailed, responseError(res))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}

	results := make(map[string]map[string]string)
	for _, hit := range parsed.Hits.Hits {
		d := hit.Source
		if results[d.Handle] == nil {
			results[d.Handle] = make(map[string]string)
		}
		results[d.Handle][d.Key] = d.Gloss
	}
	return results, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}

func closeBody(res *opensearchapi.Response) {
	if res != nil && res.Body != nil {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}
}

func responseError(res *opensearchapi.Response) error {
	data, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("status %s: %s", res.Status(), strings.TrimSpace(string(data)))
}
