package opensearch

import "errors"

var (
	// ErrNoAddresses is returned when no cluster address is configured.
	ErrNoAddresses = errors.New("no opensearch addresses configured")

	// ErrConnectionFailed indicates the client could not be created.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
