package toolkit

import "errors"

// ErrOutOfRange is returned by IsPrime for non-positive input.
var ErrOutOfRange = errors.New("toolkit: value out of range")
