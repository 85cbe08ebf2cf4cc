package renderer

import "errors"

var (
	// ErrDegenerateCamera is returned by NewCamera for coincident position and aim,
	// non-positive pixel counts, or non-positive or non-finite screen dimensions
	ErrDegenerateCamera = errors.New("degenerate camera")

	// ErrPixelOutOfRange is returned for pixel coordinates or indices outside the image
	ErrPixelOutOfRange = errors.New("pixel out of range")

	// ErrUnknownFormat is returned when an output image format is not supported
	ErrUnknownFormat = errors.New("unknown image format")
)
