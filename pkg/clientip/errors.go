package clientip

import "errors"

var ErrInvalidProxy = errors.New("invalid trusted proxy address")
