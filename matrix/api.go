// SPDX-License-Identifier: MIT
// Package matrix: public facade over the statistics and element-wise kernels.
// Implementations live in impl_*.go and ops_elementwise.go; this file only
// fixes the exported names and their contracts.

package matrix

// ColumnMeans returns the per-column arithmetic mean of X (len = X.Cols()).
// Errors: ErrNilMatrix, ErrInvalidDimensions (wrapped with "ColumnMeans").
func ColumnMeans(X Matrix) ([]float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	return means, nil
}

// CenterColumns returns a centered copy of X and the column means it removed.
// X is never mutated.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// SubColumnVector returns X with v[j] subtracted from every entry of column j.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func SubColumnVector(X Matrix, v []float64) (*Dense, error) { return ewBroadcastSubCols(X, v) }

// AddColumnVector returns X with v[j] added to every entry of column j
// (the inverse of SubColumnVector; used to un-center reconstructions).
func AddColumnVector(X Matrix, v []float64) (*Dense, error) { return ewBroadcastAddCols(X, v) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
