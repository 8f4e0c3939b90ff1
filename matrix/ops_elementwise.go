// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise micro-kernels shared by statistics and facades.
//   - Every kernel allocates its result; operands are never mutated.

package matrix

import "math"

const (
	opBroadcastSubCols = "broadcastSubCols"
	opBroadcastAddCols = "broadcastAddCols"
	opAllClose         = "AllClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - v[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, -1, opBroadcastSubCols)
}

// ewBroadcastAddCols computes out[i,j] = X[i,j] + v[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastAddCols(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, +1, opBroadcastAddCols)
}

// ewBroadcastCols is the shared body of the column broadcasts; sign is ±1.
func ewBroadcastCols(X Matrix, v []float64, sign float64, tag string) (*Dense, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(v, c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, base int
	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] + sign*v[j]
			}
		}
		return out, nil
	}

	var x float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if x, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[base+j] = x + sign*v[j]
		}
	}

	return out, nil
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
//
// Behavior highlights:
//   - Negative tolerances are taken by absolute value; non-finite ones are rejected.
//   - Early exit on the first violation.
//
// Errors:
//   - ErrNaNInf (tolerances), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	r, c := a.Rows(), a.Cols()

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
