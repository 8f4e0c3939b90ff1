// SPDX-License-Identifier: MIT

package nipals

import (
	"math"

	"github.com/viterin/vek"
)

// Row-oriented kernels over the working residual. rows[i] is a row view
// into the residual's backing buffer (len m); t has len n, p has len m.

// projectLoading writes p = Rᵀt. Column sums are accumulated row by row so
// the residual is read in storage order.
func projectLoading(rows [][]float64, t, p []float64) {
	for j := range p {
		p[j] = 0
	}
	var ti float64
	for i, row := range rows {
		ti = t[i]
		if ti == 0 {
			continue
		}
		for j, v := range row {
			p[j] += v * ti
		}
	}
}

// projectScore writes t = R·p.
func projectScore(rows [][]float64, p, t []float64) {
	for i, row := range rows {
		t[i] = vek.Dot(row, p)
	}
}

// deflate subtracts the rank-1 product t·pᵀ from the residual in place.
func deflate(rows [][]float64, t, p []float64) {
	var ti float64
	for i, row := range rows {
		ti = t[i]
		if ti == 0 {
			continue
		}
		for j := range row {
			row[j] -= ti * p[j]
		}
	}
}

// seedColumn copies the first column of the residual whose L2 norm exceeds
// floor into t and returns its index, or -1 when every column is at or
// below floor. Column 0 wins whenever it carries variance.
func seedColumn(rows [][]float64, m int, floor float64, t []float64) int {
	for j := 0; j < m; j++ {
		for i, row := range rows {
			t[i] = row[j]
		}
		if vek.Norm(t) > floor {
			return j
		}
	}

	return -1
}

// normalize scales the residual so its largest magnitude lies in [0.5, 1)
// and returns the binary exponent it removed (0 for an all-zero residual).
// Scaling by a power of two is exact outside the subnormal range.
func normalize(rows [][]float64) int {
	var peak float64
	for _, row := range rows {
		for _, v := range row {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return 0
	}
	_, exp := math.Frexp(peak)
	for _, row := range rows {
		rescale(row, -exp)
	}

	return exp
}

// rescale multiplies v by 2^exp in place.
func rescale(v []float64, exp int) {
	if exp == 0 {
		return
	}
	for i := range v {
		v[i] = math.Ldexp(v[i], exp)
	}
}
