// SPDX-License-Identifier: MIT

package nipals

import (
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

const (
	opTransform   = "Transform"
	opReconstruct = "Reconstruct"
)

// Result holds one successful decomposition. All matrices are owned by the
// Result; the input matrix is never referenced.
type Result struct {
	// Scores is T (n×k): column i holds the score vector of component i.
	Scores *matrix.Dense
	// Loadings is P (m×k): column i holds the unit-norm loading of component i.
	Loadings *matrix.Dense
	// Means are the column means removed before extraction (len m).
	Means []float64
	// Residual is the centered input after deflating all k components.
	Residual *matrix.Dense
	// Iterations counts inner-loop passes per component.
	Iterations []int

	totalNorm float64 // ‖X − mean‖_F
}

// Components returns k.
func (r *Result) Components() int { return r.Scores.Cols() }

// ExplainedVariance returns tᵢᵀtᵢ/(n−1) per component (zeros when n == 1).
func (r *Result) ExplainedVariance() []float64 {
	n, k := r.Scores.Shape()
	out := make([]float64, k)
	for c := 0; c < k; c++ {
		col, _ := r.Scores.Col(c) // c < k by construction
		out[c] = sampleVariance(vek.Dot(col, col), n)
	}

	return out
}

// ExplainedVarianceRatio returns each component's share of the total
// centered variance. Ratios sum to ≤ 1 and reach ~1 once all variance is
// extracted.
//
// Ratios are formed from norms, (‖tᵢ‖/‖X − mean‖_F)², so they stay finite
// even when the variances themselves overflow.
func (r *Result) ExplainedVarianceRatio() []float64 {
	k := r.Components()
	out := make([]float64, k)
	if r.totalNorm == 0 {
		return out
	}
	var share float64
	for c := 0; c < k; c++ {
		col, _ := r.Scores.Col(c) // c < k by construction
		share = floats.Norm(col, 2) / r.totalNorm
		out[c] = share * share
	}

	return out
}

// Reconstruct returns T·Pᵀ + mean, the rank-k approximation of the input.
//
// Complexity: O(n·m·k).
func (r *Result) Reconstruct() (*matrix.Dense, error) {
	Pt, err := matrix.Transpose(r.Loadings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	approx, err := matrix.Mul(r.Scores, Pt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	out, err := matrix.AddColumnVector(approx, r.Means)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return out, nil
}

// Transform projects new samples onto the extracted components.
//
// Implementation:
//   - Stage 1: validate Xnew (non-empty, finite, same feature count).
//   - Stage 2: center with the stored training means.
//   - Stage 3: for each component, t = R·p then R ← R − t·pᵀ.
//
// Behavior highlights:
//   - Transform of the training matrix reproduces Scores up to rounding.
//   - Xnew is never mutated.
//
// Errors:
//   - ErrInvalidArgument (also matching matrix.ErrDimensionMismatch on a
//     feature-count mismatch, or matrix.ErrNaNInf on non-finite input).
//
// Complexity: O(n'·m·k).
func (r *Result) Transform(Xnew matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(Xnew); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, invalidArgf(err, "data matrix"))
	}
	if Xnew.Cols() != len(r.Means) {
		return nil, fmt.Errorf("%s: %w", opTransform,
			invalidArgf(matrix.ErrDimensionMismatch, "got %d features, want %d", Xnew.Cols(), len(r.Means)))
	}
	if err := matrix.ValidateFinite(Xnew); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, invalidArgf(err, "data matrix"))
	}

	centered, err := matrix.SubColumnVector(Xnew, r.Means)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	n, k := Xnew.Rows(), r.Components()
	rows := make([][]float64, n)
	for i := range rows {
		if rows[i], err = centered.RawRowView(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opTransform, err)
		}
	}

	scores := make([][]float64, k)
	for c := 0; c < k; c++ {
		p, _ := r.Loadings.Col(c)
		t := make([]float64, n)
		projectScore(rows, p, t)
		deflate(rows, t, p)
		scores[c] = t
	}

	out, err := columnsToDense(scores, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}

	return out, nil
}
