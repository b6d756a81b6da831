package geometry

import "errors"

var (
	// ErrNonFinite indicates that a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geometry: non-finite coordinate")

	// ErrVertexOutOfRange indicates a flat vertex index outside [0, a+b).
	ErrVertexOutOfRange = errors.New("geometry: vertex index out of range")
)
