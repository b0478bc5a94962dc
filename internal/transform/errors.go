package transform

import "errors"

var (
	// ErrInvalidProjection is returned by projection constructors whose
	// parameters would produce a degenerate or depth-inverted matrix.
	ErrInvalidProjection = errors.New("transform: invalid projection parameters")

	// ErrNonInvertible is returned by Invert for singular or near-singular matrices.
	ErrNonInvertible = errors.New("transform: non-invertible matrix")

	// ErrDegenerateCamera is returned by LookAt when eye, target and up do not
	// span a basis.
	ErrDegenerateCamera = errors.New("transform: degenerate camera basis")
)
