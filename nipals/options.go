// SPDX-License-Identifier: MIT

package nipals

import (
	"math"

	"github.com/rs/zerolog"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance bounds ‖t' − t‖₂ for the inner loop to stop.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the inner loop per component.
	DefaultMaxIterations = 500

	// DefaultDegeneracyTolerance is the relative threshold, scaled by the
	// Frobenius norm of the centered input, below which a score or seed
	// column counts as zero (see WithDegeneracyTolerance for the rounding floor).
	DefaultDegeneracyTolerance = 1e-10
)

// Option mutates the decomposition settings.
// Values are checked by Decompose, which reports ErrInvalidArgument rather
// than panicking.
type Option func(*Options)

// Options is the resolved configuration of one Decompose call.
type Options struct {
	Tolerance           float64
	MaxIterations       int
	DegeneracyTolerance float64
	Logger              zerolog.Logger
}

// DefaultOptions returns the documented defaults with a disabled logger.
func DefaultOptions() Options {
	return Options{
		Tolerance:           DefaultTolerance,
		MaxIterations:       DefaultMaxIterations,
		DegeneracyTolerance: DefaultDegeneracyTolerance,
		Logger:              zerolog.Nop(),
	}
}

// WithTolerance sets the convergence tolerance on ‖t' − t‖₂. Must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the inner-loop cap per component. Must be ≥ 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithDegeneracyTolerance sets the relative zero threshold. Must be finite and ≥ 0.
//
// The effective floor is max(eps·‖X − mean‖_F, n·ε·‖X‖_F), with ε the float64
// machine epsilon: centering columns with large offsets leaves rounding
// residue of that size, and it never counts as a component. With eps = 0
// only that residue floor applies.
func WithDegeneracyTolerance(eps float64) Option {
	return func(o *Options) { o.DegeneracyTolerance = eps }
}

// WithLogger attaches a logger; one Debug event is emitted per component.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOptions replaces the whole configuration, e.g. one built from a config file.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies setters in order over the defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Validate checks the tunables with the same rules Decompose applies.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return invalidArgf(nil, "tolerance must be finite and > 0, got %g", o.Tolerance)
	}
	if o.MaxIterations < 1 {
		return invalidArgf(nil, "max iterations must be >= 1, got %d", o.MaxIterations)
	}
	if math.IsNaN(o.DegeneracyTolerance) || math.IsInf(o.DegeneracyTolerance, 0) || o.DegeneracyTolerance < 0 {
		return invalidArgf(nil, "degeneracy tolerance must be finite and >= 0, got %g", o.DegeneracyTolerance)
	}

	return nil
}
