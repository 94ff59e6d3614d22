// Package config loads typed configuration from environment variables.
//
// Values are read from the process environment after optional dotenv files
// (github.com/joho/godotenv) and decoded into structs by
// github.com/caarlos0/env according to their field tags:
//
//	type Config struct {
//		Backend string        `env:"BACKEND" envDefault:"fs"`
//		Langs   []string      `env:"LANGUAGES" envSeparator:","`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("CONLANG_"))
//
// Loading never mutates package state, so tests can call Load repeatedly
// with WithEnvironment.
package config
