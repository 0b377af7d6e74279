package polyhash

import "errors"

var (
	// ErrBadDepth indicates a non-positive number of hash functions.
	ErrBadDepth = errors.New("polyhash: depth must be at least 1")
	// ErrBadDegree indicates an independence order below 2.
	ErrBadDegree = errors.New("polyhash: degree k must be at least 2")
	// ErrBadWidth indicates a non-positive bucket count for Bin.
	ErrBadWidth = errors.New("polyhash: width must be at least 1")
	// ErrRowOutOfRange indicates a row index ≥ the configured depth.
	ErrRowOutOfRange = errors.New("polyhash: row index out of range")
)
