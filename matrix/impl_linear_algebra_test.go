// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/Cimergence/chemometrics-notebook/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_FastAndFallbackAgree(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, fast, want, 0, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, slow, want, 0, 0)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6})

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)

	got, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)
}

func TestSub(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	want := NewFilledDense(t, 2, 2, []float64{4, 4, 4, 4})

	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)

	got, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)

	c := NewFilledDense(t, 1, 2, []float64{1, 2})
	_, err = matrix.Sub(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFrobeniusNorm(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{3, 0, 0, 4})
	n, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n, epsTight)

	n, err = matrix.FrobeniusNorm(hide{a})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n, epsTight)

	// Entries whose squares overflow still produce a finite norm.
	big := NewFilledDense(t, 1, 2, []float64{1e200, 1e200})
	n, err = matrix.FrobeniusNorm(big)
	require.NoError(t, err)
	assert.False(t, math.IsInf(n, 0))
	assert.InEpsilon(t, math.Sqrt2*1e200, n, 1e-12)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1, 2.001})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-4)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
