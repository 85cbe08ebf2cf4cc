package geometry

import "errors"

// ErrInvalidShape is returned by shape constructors for degenerate or non-finite input
var ErrInvalidShape = errors.New("invalid shape")
