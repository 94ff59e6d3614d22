package redis

import "time"

// Config describes the Redis connection used by the redis backend.
type Config struct {
	ConnectionURL  string        `env:"CONLANG_REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format: redis://:password@localhost:6379/0
	Namespace      string        `env:"CONLANG_REDIS_NAMESPACE" envDefault:"conlang:"`           // Prefix of every stored document key
	RetryAttempts  int           `env:"CONLANG_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"CONLANG_REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"CONLANG_REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
}
