// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics a variance-based decomposition needs
//     (column means, column centering) as deterministic compositions over
//     the ew* micro-kernels.
//
// Exposed API:
//   - ColumnMeans(X)   -> means          // per-column arithmetic mean
//   - CenterColumns(X) -> (Xc, means)    // subtract per-column mean into a fresh copy
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// columnMeans computes Σ_i X[i,j] / r for every column j.
//
// Implementation:
//   - Stage 1: validate X non-empty.
//   - Stage 2: accumulate column sums (Dense fast-path; At fallback).
//   - Stage 3: scale sums by 1/r.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, err
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, err
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: compute column means via columnMeans.
//   - Stage 2: ewBroadcastSubCols builds the centered copy.
//
// Behavior highlights:
//   - X is never mutated; the result is a fresh *Dense.
//   - Column averages of the result are ~0 within rounding.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c), reusable to un-center later.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) + O(c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}
