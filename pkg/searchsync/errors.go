package searchsync

import "errors"

var (
	ErrIndexFailed  = errors.New("failed to prepare search index")
	ErrBulkFailed   = errors.New("bulk indexing failed")
	ErrSearchFailed = errors.New("search request failed")
)
