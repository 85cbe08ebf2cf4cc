package core

import "errors"

var (
	// ErrZeroVector is returned when normalizing a vector of zero magnitude
	ErrZeroVector = errors.New("cannot normalize a zero vector")

	// ErrNonFiniteVector is returned when normalizing a vector with a NaN or infinite component
	ErrNonFiniteVector = errors.New("cannot normalize a non-finite vector")

	// ErrDegenerateDirection is returned when a basis is requested for a zero-length or non-finite direction
	ErrDegenerateDirection = errors.New("degenerate direction")

	// ErrNoPoints is returned by Centroid for an empty point list
	ErrNoPoints = errors.New("cannot compute centroid of an empty list of points")

	// ErrIndexOutOfRange is returned for matrix rows or columns beyond the matrix bounds
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMatrixShape is returned for empty, ragged or incompatible matrix dimensions
	ErrMatrixShape = errors.New("invalid matrix shape")
)
