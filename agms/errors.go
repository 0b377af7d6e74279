package agms

import "errors"

var (
	// ErrBadDepth indicates a non-positive row count at construction.
	ErrBadDepth = errors.New("agms: depth must be at least 1")
	// ErrBadWidth indicates a non-positive column count at construction.
	ErrBadWidth = errors.New("agms: width must be at least 1")
	// ErrNilSketch indicates DotProduct was called against a nil sketch.
	ErrNilSketch = errors.New("agms: other sketch is nil")
	// ErrDimensionMismatch indicates two sketches differ in depth or width
	// and therefore have incomparable buckets.
	ErrDimensionMismatch = errors.New("agms: sketches differ in depth or width")
)
