package pg

import "time"

// Config describes the Postgres pool and migration settings.
type Config struct {
	ConnectionString  string        `env:"CONLANG_PG_CONN_URL"`
	MaxOpenConns      int32         `env:"CONLANG_PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"CONLANG_PG_MAX_IDLE_CONNS" envDefault:"2"`
	HealthCheckPeriod time.Duration `env:"CONLANG_PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"CONLANG_PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"CONLANG_PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"CONLANG_PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"CONLANG_PG_RETRY_INTERVAL" envDefault:"2s"`

	MigrationsDir   string `env:"CONLANG_PG_MIGRATIONS_DIR" envDefault:"migrations"`               // Directory inside the migrations filesystem
	MigrationsTable string `env:"CONLANG_PG_MIGRATIONS_TABLE" envDefault:"conlang_schema_version"` // Goose version table
}
