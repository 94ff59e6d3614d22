package conlang

import "errors"

var (
	ErrEmptyContent       = errors.New("empty document content")
	ErrListingFailed      = errors.New("failed to list source keys")
	ErrListingUnsupported = errors.New("source does not support listing")
	ErrReadFailed         = errors.New("failed to read document")
)
