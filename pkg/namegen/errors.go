package namegen

import "errors"

var (
	ErrEmptyCatalog = errors.New("template catalog is empty")
	ErrInvalidCount = errors.New("name count must be positive")
)
