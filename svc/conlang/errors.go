package conlang

import "errors"

var (
	ErrLanguageRequired = errors.New("language or hybrid pairs required")
	ErrTooManyNames     = errors.New("requested name count exceeds the limit")
	ErrEmptyTerm        = errors.New("search term is empty")
)
