package pointio

import "errors"

var (
	// ErrMalformed indicates a token that is not a valid number.
	ErrMalformed = errors.New("pointio: malformed input")

	// ErrShortInput indicates the input ended before all coordinates were read.
	ErrShortInput = errors.New("pointio: input ended early")

	// ErrBadCount indicates a negative point count.
	ErrBadCount = errors.New("pointio: point count must be non-negative")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("pointio: unknown format")
)
