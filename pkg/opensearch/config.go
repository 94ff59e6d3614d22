package opensearch

// Config holds the OpenSearch connection used to mirror the search index.
type Config struct {
	Addresses    []string `env:"CONLANG_OPENSEARCH_ADDRESSES" envSeparator:","`
	Username     string   `env:"CONLANG_OPENSEARCH_USERNAME"`
	Password     string   `env:"CONLANG_OPENSEARCH_PASSWORD"`
	Index        string   `env:"CONLANG_OPENSEARCH_INDEX" envDefault:"conlang-morphemes"`
	MaxRetries   int      `env:"CONLANG_OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"CONLANG_OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
}
