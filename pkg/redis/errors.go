package redis

import "errors"

var (
	ErrEmptyURL          = errors.New("empty redis URL, set CONLANG_REDIS_URL")
	ErrInvalidURL        = errors.New("invalid redis URL")
	ErrNotReady          = errors.New("redis document store did not become ready in time")
	ErrHealthcheckFailed = errors.New("redis document store healthcheck failed")
)
