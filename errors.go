package vecmath

import "errors"

var (
	// ErrZeroVector is returned when normalizing the zero vector.
	ErrZeroVector = errors.New("zero vector has no direction")

	// ErrDegenerateBasis is returned by Decompose when the basis vector is
	// the zero vector.
	ErrDegenerateBasis = errors.New("basis vector must be non-zero")
)
