package mongo

import "time"

// Config describes the MongoDB client used by the mongo backend.
type Config struct {
	ConnectionURL   string        `env:"CONLANG_MONGODB_URL"`
	Database        string        `env:"CONLANG_MONGODB_DATABASE" envDefault:"conlang"`
	ConnectTimeout  time.Duration `env:"CONLANG_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"CONLANG_MONGODB_MAX_POOL_SIZE" envDefault:"20"`
	MinPoolSize     uint64        `env:"CONLANG_MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"CONLANG_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryAttempts   int           `env:"CONLANG_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"CONLANG_MONGODB_RETRY_INTERVAL" envDefault:"2s"`
}
