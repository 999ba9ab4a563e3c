// SPDX-License-Identifier: MIT
// Package constraint: sentinel error set. Callers MUST use errors.Is.
package constraint

import "errors"

var (
	// ErrDimensionMismatch is returned when a constraint's parameters, or a
	// query point, disagree on dimension.
	ErrDimensionMismatch = errors.New("constraint: dimension mismatch")
	// ErrInvertedBounds is returned by NewBox when min[i] > max[i].
	ErrInvertedBounds = errors.New("constraint: min exceeds max")
	// ErrEmptyDiscreteSet is returned by NewDiscrete with zero points.
	ErrEmptyDiscreteSet = errors.New("constraint: empty discrete set")
	// ErrNonPositiveSpacing is returned by Grid when spacing <= 0.
	ErrNonPositiveSpacing = errors.New("constraint: non-positive grid spacing")
	// ErrEmptyRanges is returned by Grid when ranges has zero dimensions.
	ErrEmptyRanges = errors.New("constraint: empty grid ranges")
)
