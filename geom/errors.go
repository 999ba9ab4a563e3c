// SPDX-License-Identifier: MIT
package geom

import "errors"

var (
	// ErrDimensionMismatch is returned when min/max (or similar paired
	// vectors) do not share a dimension.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")
	// ErrInvertedBounds is returned when min[i] > max[i] for some dimension.
	ErrInvertedBounds = errors.New("geom: min exceeds max")
	// ErrNonFiniteComponent names a NaN or ±Inf component where finiteness
	// is required. No function in this module returns it; inputs are not
	// checked for finiteness.
	ErrNonFiniteComponent = errors.New("geom: non-finite component")
	// ErrNonPositiveEffort names a non-positive effort magnitude. FromRatio
	// does not return it: FromRatio returns no error and widens effort by
	// Epsilon itself.
	ErrNonPositiveEffort = errors.New("geom: non-positive effort")
)
