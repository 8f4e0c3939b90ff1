// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum/mat.
//
// Purpose:
//   - Let callers that already hold gonum matrices feed the decomposer and
//     hand results back to gonum (SVD cross-checks, plotting, regression).
//   - Both directions copy; no storage is ever shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// FromGonum copies any gonum mat.Matrix into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrInvalidDimensions for an empty source.
//   - ErrNaNInf (wrapped with coordinates) under the default numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	out.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToGonum copies m into a fresh *mat.Dense with the same row-major layout.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
