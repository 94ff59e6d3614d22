package source

import "errors"

var (
	ErrInvalidKey    = errors.New("invalid document key")
	ErrInvalidConfig = errors.New("invalid source configuration")
	ErrWriteFailed   = errors.New("failed to write document")
	ErrCopyFailed    = errors.New("failed to copy documents")

	// S3 specific
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")

	// Context errors are surfaced separately so callers can tell a slow
	// backend from a broken one.
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
