// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the verify package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Harness methods attach method context via verifyErrorf.
package verify

import (
	"errors"
	"fmt"
)

// ErrEmptyCurrentState is returned when Run is given a zero-dimension
// current state.
var ErrEmptyCurrentState = errors.New("verify: empty current state")

// ErrDimensionMismatch is returned when current, the response's
// suggestions, or the constraint set disagree on dimension.
var ErrDimensionMismatch = errors.New("verify: dimension mismatch")

func verifyErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
