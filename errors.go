package typeset

import "errors"

// Sentinel errors for tree transformation.
var (
	ErrOrdinalRange = errors.New("ordinal out of range")
	ErrNilDocument  = errors.New("document tree cannot be nil")
	ErrParse        = errors.New("markdown parsing failed")
)
