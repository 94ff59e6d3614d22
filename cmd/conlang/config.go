package main

import (
	"time"

	"github.com/dmitrymomot/conlang/pkg/httpserver"
	"github.com/dmitrymomot/conlang/pkg/mongo"
	"github.com/dmitrymomot/conlang/pkg/opensearch"
	"github.com/dmitrymomot/conlang/pkg/pg"
	"github.com/dmitrymomot/conlang/pkg/ratelimiter"
	"github.com/dmitrymomot/conlang/pkg/redis"
	"github.com/dmitrymomot/conlang/pkg/source"
)

// Backends accepted by CONLANG_BACKEND.
const (
	BackendFS       = "fs"
	BackendS3       = "s3"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config is the application configuration, read from the environment and
// .env files. Command line flags override it.
type Config struct {
	Env       string `env:"CONLANG_ENV" envDefault:"development"`
	LogLevel  string `env:"CONLANG_LOG_LEVEL"`
	LogFormat string `env:"CONLANG_LOG_FORMAT"`

	Backend   string   `env:"CONLANG_BACKEND" envDefault:"fs"`
	DataDir   string   `env:"CONLANG_DATA_DIR" envDefault:"."`             // Root of the fs backend
	Dir       string   `env:"CONLANG_LANGUAGES_DIR" envDefault:"Conlangs"` // Key prefix of language documents
	Ext       string   `env:"CONLANG_EXT" envDefault:"json"`
	Languages []string `env:"CONLANG_LANGUAGES" envSeparator:","` // Empty lists them from the backend

	Seed      uint64   `env:"CONLANG_SEED"` // 0 seeds from the clock
	Templates []string `env:"CONLANG_TEMPLATES" envSeparator:","`
	MaxNames  int      `env:"CONLANG_MAX_NAMES" envDefault:"100"`

	SearchIndex bool `env:"CONLANG_SEARCH_INDEX" envDefault:"false"` // Serve search from OpenSearch

	// In-memory document cache in front of remote backends; 0 disables it.
	CacheSize int           `env:"CONLANG_CACHE_SIZE" envDefault:"256"`
	CacheTTL  time.Duration `env:"CONLANG_CACHE_TTL" envDefault:"5m"`

	// Proxies allowed to set X-Forwarded-For and X-Real-IP, as CIDRs or addresses.
	TrustedProxies []string `env:"CONLANG_TRUSTED_PROXIES" envSeparator:","`

	HTTP       httpserver.Config
	RateLimit  ratelimiter.Config
	Redis      redis.Config
	Postgres   pg.Config
	Mongo      mongo.Config
	OpenSearch opensearch.Config
	S3         source.S3Config `envPrefix:"CONLANG_"`
}
