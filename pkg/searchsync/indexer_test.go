package searchsync_test

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/lexsearch"
	"github.com/dmitrymomot/conlang/pkg/morpheme"
	"github.com/dmitrymomot/conlang/pkg/searchsync"
)

// fakeCluster records index state and bulk documents the way the tests
// need it; it implements just enough of the REST API.
type fakeCluster struct {
	mu          sync.Mutex
	indexExists bool
	created     string
	docs        map[string]searchsync.Document
	bulkCalls   int
	lastQuery   map[string]any
	bulkError   bool
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodHead && r.URL.Path == "/morphemes":
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/morphemes":
		body, _ := io.ReadAll(r.Body)
		f.created = string(body)
		f.indexExists = true
		_, _ = w.Write([]byte(`{"acknowledged": true}`))
	case r.Method == http.MethodDelete && r.URL.Path == "/morphemes":
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "index_not_found_exception"}`))
			return
		}
		f.indexExists = false
		_, _ = w.Write([]byte(`{"acknowledged": true}`))
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		f.bulkCalls++
		if f.bulkError {
			_, _ = w.Write([]byte(`{"errors": true, "items": [{"index": {"status": 400, "error": {"type": "mapper_parsing_exception", "reason": "bad gloss"}}}]}`))
			return
		}
		scanner := bufio.NewScanner(r.Body)
		for scanner.Scan() {
			var action struct {
				Index struct {
					ID string `json:"_id"`
				} `json:"index"`
			}
			_ = json.Unmarshal(scanner.Bytes(), &action)
			scanner.Scan()
			var doc searchsync.Document
			_ = json.Unmarshal(scanner.Bytes(), &doc)
			f.docs[action.Index.ID] = doc
		}
		_, _ = w.Write([]byte(`{"errors": false, "items": []}`))
	case strings.HasSuffix(r.URL.Path, "/_refresh"):
		_, _ = w.Write([]byte(`{"_shards": {"total": 1, "successful": 1, "failed": 0}}`))
	case strings.HasSuffix(r.URL.Path, "/_search"):
		f.lastQuery = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&f.lastQuery)
		_, _ = w.Write([]byte(`{"hits": {"hits": [
			{"_source": {"handle": "Elvish", "category": "prefix", "rank": 0, "key": "mor", "gloss": "dark"}},
			{"_source": {"handle": "Elvish", "category": "root", "rank": 1, "key": "mor", "gloss": "shadow"}},
			{"_source": {"handle": "Human", "category": "root", "rank": 1, "key": "moor", "gloss": "heath"}}
		]}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newIndexer(t *testing.T, opts ...searchsync.Option) (*searchsync.Indexer, *fakeCluster) {
	t.Helper()
	cluster := &fakeCluster{docs: map[string]searchsync.Document{}}
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	client, err := opensearch.NewClient(opensearch.Config{Addresses: []string{srv.URL}, DisableRetry: true})
	require.NoError(t, err)
	return searchsync.New(client, "morphemes", opts...), cluster
}

func testHandles() []lexsearch.Handle {
	table := morpheme.Table{
		morpheme.Prefix: {"dun": morpheme.Plain("dark"), "gil": morpheme.Plain("star")},
		morpheme.Root:   {"mor": morpheme.Described("shadow", nil)},
	}
	return []lexsearch.Handle{
		lexsearch.NewHandle("Elvish", "", table),
		lexsearch.NewHandle("Elvish", "dark-elven", morpheme.Merge(table, morpheme.Table{
			morpheme.Root: {"morn": morpheme.Plain("night")},
		})),
	}
}

func TestDocuments(t *testing.T) {
	t.Parallel()

	docs := searchsync.Documents(testHandles())
	require.Len(t, docs, 7)
	assert.Equal(t, searchsync.Document{
		Handle: "Elvish", Language: "Elvish", Category: "prefix", Rank: 0, Key: "dun", Gloss: "dark",
	}, docs[0])
	assert.Equal(t, "Elvish (dark-elven)", docs[6].Handle)
	assert.Equal(t, "dark-elven", docs[6].Subset)
	assert.Equal(t, 1, docs[6].Rank)

	// ids are stable and distinct per handle
	again := searchsync.Documents(testHandles())
	assert.Equal(t, docs[0].ID(), again[0].ID())
	assert.NotEqual(t, docs[0].ID(), docs[3].ID())
}

func TestSync(t *testing.T) {
	t.Parallel()

	t.Run("creates index and writes in batches", func(t *testing.T) {
		t.Parallel()
		idx, cluster := newIndexer(t, searchsync.WithBatchSize(3))

		n, err := idx.Sync(t.Context(), testHandles())
		require.NoError(t, err)
		assert.Equal(t, 7, n)
		assert.Equal(t, 3, cluster.bulkCalls)
		assert.Len(t, cluster.docs, 7)
		assert.Contains(t, cluster.created, `"rank"`)

		// re-syncing overwrites the same ids
		_, err = idx.Sync(t.Context(), testHandles())
		require.NoError(t, err)
		assert.Len(t, cluster.docs, 7)
	})

	t.Run("item errors fail the sync", func(t *testing.T) {
		t.Parallel()
		idx, cluster := newIndexer(t)
		cluster.bulkError = true

		_, err := idx.Sync(t.Context(), testHandles())
		assert.ErrorIs(t, err, searchsync.ErrBulkFailed)
		assert.ErrorContains(t, err, "bad gloss")
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	idx, cluster := newIndexer(t)
	require.NoError(t, idx.Reset(t.Context()))

	require.NoError(t, idx.EnsureIndex(t.Context()))
	assert.True(t, cluster.indexExists)
	require.NoError(t, idx.Reset(t.Context()))
	assert.False(t, cluster.indexExists)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	idx, cluster := newIndexer(t)
	results, err := idx.Search(t.Context(), "MO*")
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{
		"Elvish": {"mor": "shadow"},
		"Human":  {"moor": "heath"},
	}, results)

	raw, err := json.Marshal(cluster.lastQuery)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"value":"*MO\\**"`)
	assert.Contains(t, string(raw), `"case_insensitive":true`)
}
