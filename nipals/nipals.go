// SPDX-License-Identifier: MIT

package nipals

import (
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

const (
	opDecompose = "Decompose"
	opNIPALS    = "NIPALS"

	machineEpsilon = 0x1p-52
)

// NIPALS is the plain contract: decompose X into k components and return
// the score matrix T (n×k) and the loading matrix P (m×k).
//
// Equivalent to Decompose(X, components, WithTolerance(tol), WithMaxIterations(maxIter))
// without the auxiliary outputs.
func NIPALS(X matrix.Matrix, components int, tol float64, maxIter int) (T, P *matrix.Dense, err error) {
	res, err := Decompose(X, components, WithTolerance(tol), WithMaxIterations(maxIter))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNIPALS, err)
	}

	return res.Scores, res.Loadings, nil
}

// Decompose extracts `components` score/loading pairs from X.
//
// Implementation:
//   - Stage 1 (Validate): options, X non-empty and finite, 1 ≤ components ≤ X.Cols().
//   - Stage 2 (Center): R₀ = X − column means, on a fresh copy.
//   - Stage 3 (Extract): for each component run the bounded fixed-point loop
//     on the current residual, then deflate it by t·pᵀ.
//   - Stage 4 (Finalize): pack T, P, means, residual and iteration counts.
//
// Behavior highlights:
//   - X is never mutated.
//   - The seed is the first residual column; a numerically zero column 0
//     falls through to the next column that still carries variance.
//   - Any finite input magnitude is accepted: the loop works on a
//     power-of-two rescaled residual, which leaves every value exact.
//   - On any error the Result is nil: no partial components are returned.
//
// Errors:
//   - ErrInvalidArgument (possibly also matching matrix.ErrNilMatrix,
//     matrix.ErrInvalidDimensions or matrix.ErrNaNInf).
//   - ErrDegenerateComponent, ErrConvergenceFailure, wrapped in *ComponentError.
//
// Complexity:
//   - Time O(k·I·n·m), Space O(n·m + k·(n+m)).
func Decompose(X matrix.Matrix, components int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	if err := validateInput(X, components); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	n, m := X.Rows(), X.Cols()

	residual, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, invalidArgf(err, "centering"))
	}
	rows := make([][]float64, n)
	for i := range rows {
		if rows[i], err = residual.RawRowView(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
	}

	total, err := matrix.FrobeniusNorm(residual)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	raw, err := matrix.FrobeniusNorm(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	floor := degeneracyFloor(o.DegeneracyTolerance, total, raw, n)

	// The loop runs on R₀·2⁻ᵉ so sums of squares cannot overflow; scores,
	// step sizes and the residual are scaled back on the way out.
	exp := normalize(rows)
	floor = math.Ldexp(floor, -exp)

	scores := make([][]float64, components)
	loadings := make([][]float64, components)
	iterations := make([]int, components)
	for c := 0; c < components; c++ {
		t, p, it, delta, err := extractComponent(rows, m, c, floor, exp, o)
		if err != nil {
			o.Logger.Debug().Err(err).Int("component", c).Msg("nipals: extraction failed")
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		deflate(rows, t, p)
		scores[c], loadings[c], iterations[c] = t, p, it

		o.Logger.Debug().
			Int("component", c).
			Int("iterations", it).
			Float64("delta", delta).
			Float64("score_norm", math.Ldexp(vek.Norm(t), exp)).
			Msg("nipals: component extracted")
	}
	for _, t := range scores {
		rescale(t, exp)
	}
	for _, row := range rows {
		rescale(row, exp)
	}

	T, err := columnsToDense(scores, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	P, err := columnsToDense(loadings, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return &Result{
		Scores:     T,
		Loadings:   P,
		Means:      means,
		Residual:   residual,
		Iterations: iterations,
		totalNorm:  total,
	}, nil
}

// validateInput applies the argument contract in priority order:
// nil/empty → finite values → component range.
func validateInput(X matrix.Matrix, components int) error {
	if err := matrix.ValidateNonEmpty(X); err != nil {
		return invalidArgf(err, "data matrix")
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return invalidArgf(err, "data matrix")
	}
	if components < 1 || components > X.Cols() {
		return invalidArgf(nil, "components must be in [1, %d], got %d", X.Cols(), components)
	}

	return nil
}

// degeneracyFloor is the norm at or below which a seed or score column
// counts as zero: the relative threshold on ‖R₀‖_F, raised to the rounding
// residue n·ε·‖X‖_F that centering columns with large offsets leaves behind.
func degeneracyFloor(eps, centered, raw float64, n int) float64 {
	return math.Max(eps*centered, float64(n)*machineEpsilon*raw)
}

// extractComponent runs the bounded fixed-point loop for one component on
// the current residual and returns the converged score, unit loading,
// iterations spent and the final step size. rows hold the residual scaled
// by 2⁻ᵉˣᵖ; floor is in the same units, while o.Tolerance and any reported
// delta are in the caller's units.
func extractComponent(rows [][]float64, m, component int, floor float64, exp int, o Options) (t, p []float64, iterations int, delta float64, err error) {
	fail := func(it int, cause error) error {
		return &ComponentError{Component: component, Iterations: it, Delta: math.Ldexp(delta, exp), Err: cause}
	}

	n := len(rows)
	t = make([]float64, n)
	if seedColumn(rows, m, floor, t) < 0 {
		return nil, nil, 0, 0, fail(0, ErrDegenerateComponent)
	}
	p = make([]float64, m)
	next := make([]float64, n)
	tol := math.Ldexp(o.Tolerance, -exp)

	var tt, pn float64
	for iterations = 1; iterations <= o.MaxIterations; iterations++ {
		// p = Rᵀt / (tᵀt)
		tt = vek.Dot(t, t)
		if tt == 0 || math.Sqrt(tt) <= floor {
			return nil, nil, 0, 0, fail(iterations-1, ErrDegenerateComponent)
		}
		projectLoading(rows, t, p)
		vek.DivNumber_Inplace(p, tt)

		// p = p / ‖p‖₂
		pn = vek.Norm(p)
		if pn == 0 || math.IsNaN(pn) || math.IsInf(pn, 0) {
			return nil, nil, 0, 0, fail(iterations-1, ErrDegenerateComponent)
		}
		vek.DivNumber_Inplace(p, pn)

		// t' = R·p
		projectScore(rows, p, next)
		delta = vek.Distance(next, t)
		t, next = next, t
		if math.IsNaN(delta) {
			return nil, nil, 0, 0, fail(iterations, ErrDegenerateComponent)
		}
		if delta < tol {
			return t, p, iterations, math.Ldexp(delta, exp), nil
		}
	}

	return nil, nil, 0, 0, fail(o.MaxIterations, ErrConvergenceFailure)
}

// columnsToDense packs k column vectors of length rows into a rows×k Dense.
func columnsToDense(cols [][]float64, rows int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		row, err := out.RawRowView(i)
		if err != nil {
			return nil, err
		}
		for j, col := range cols {
			row[j] = col[i]
		}
	}

	return out, nil
}

// sampleVariance divides a sum of squares by n−1; a single sample has none.
func sampleVariance(sumSq float64, n int) float64 {
	if n < 2 {
		return 0
	}

	return sumSq / float64(n-1)
}
