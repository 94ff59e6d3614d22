package morpheme

import "errors"

var (
	// ErrNotFound is returned when a requested key is absent from storage.
	ErrNotFound = errors.New("morpheme table not found")

	// ErrMalformedData is returned when stored content is not shaped as a morpheme document.
	ErrMalformedData = errors.New("malformed morpheme data")

	// ErrConfiguration is returned for caller-supplied structural errors,
	// such as an empty template catalog or a missing language.
	ErrConfiguration = errors.New("invalid configuration")

	ErrInvalidEntry    = errors.New("entry must be a string or an object")
	ErrInvalidMeaning  = errors.New("entry meaning must be a string")
	ErrInvalidCategory = errors.New("category must be an object of entries")
	ErrInvalidSubsets  = errors.New("subsets must be an object of string keys")
)
