package cga

import "errors"

var (
	// ErrDimension indicates a conformal space over an unsupported number
	// of real dimensions.
	ErrDimension = errors.New("cga: conformal space dimension must be 2 or 3")
	// ErrDegenerateObject indicates a multivector whose normalizing
	// coefficient is zero for the requested decoding; the caller may try
	// a different decode variant.
	ErrDegenerateObject = errors.New("cga: degenerate object, normalizing coefficient is zero")
)
