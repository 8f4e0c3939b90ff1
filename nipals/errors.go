// SPDX-License-Identifier: MIT

package nipals

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; data-dependent failures also carry a
// *ComponentError reachable with errors.As.
var (
	// ErrInvalidArgument marks caller misuse detected before any iteration:
	// nil/empty/non-finite matrix, component count outside [1, features],
	// non-positive tolerance or iteration cap.
	ErrInvalidArgument = errors.New("nipals: invalid argument")

	// ErrDegenerateComponent signals that the remaining variance was exhausted
	// (zero-norm score or loading) before the requested component count.
	ErrDegenerateComponent = errors.New("nipals: degenerate component")

	// ErrConvergenceFailure signals that the inner loop hit MaxIterations
	// without ‖t' − t‖₂ dropping below Tolerance.
	ErrConvergenceFailure = errors.New("nipals: convergence failure")
)

// ComponentError reports which component failed and where the inner loop was.
// Err is ErrDegenerateComponent or ErrConvergenceFailure.
type ComponentError struct {
	Component  int     // zero-based component index
	Iterations int     // inner iterations completed for this component
	Delta      float64 // last ‖t' − t‖₂ observed (0 when no step was taken)
	Err        error   // sentinel cause
}

// Error implements error.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("component %d (iterations=%d, delta=%g): %v", e.Component, e.Iterations, e.Delta, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ComponentError) Unwrap() error { return e.Err }

// invalidArgf builds an ErrInvalidArgument error, optionally chaining a
// lower-level sentinel (e.g. matrix.ErrNaNInf) so both match errors.Is.
func invalidArgf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, msg, cause)
	}

	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
