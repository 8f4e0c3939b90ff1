// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

// --- SubColumnVector / AddColumnVector ---------------------------------------

func TestSubColumnVector_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	colMeans := []float64{4, 5, 6}

	gotFast, err := matrix.SubColumnVector(X, colMeans)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	gotSlow, err := matrix.SubColumnVector(hide{X}, colMeans)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	exp := [][]float64{
		{-3, -3, -3},
		{6, 15, 24},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a := MustAt(t, gotFast, i, j)
			b := MustAt(t, gotSlow, i, j)
			if a != exp[i][j] || b != exp[i][j] {
				t.Fatalf("subCols[%d,%d]: fast=%v slow=%v want=%v", i, j, a, b, exp[i][j])
			}
		}
	}
}

func TestAddColumnVector_UndoesSub(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{0.5, -1, 2, 7, -3, 1e-3})
	v := []float64{1.25, -8}

	centered, err := matrix.SubColumnVector(X, v)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	back, err := matrix.AddColumnVector(hide{centered}, v)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	CompareClose(t, back, X, 0, 1e-15)
}

func TestColumnVector_DimMismatch_Err(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := matrix.SubColumnVector(X, []float64{0, 0}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("sub: want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.AddColumnVector(X, []float64{0, 0, 0, 0}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("add: want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.SubColumnVector(nil, []float64{0}); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: want ErrNilMatrix, got %v", err)
	}
}

// --- AllClose -----------------------------------------------------------------

func TestAllClose_BasicTruthTable(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	b := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})

	ok, err := matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("identical: ok=%v err=%v", ok, err)
	}

	_ = b.Set(1, 1, 1e-10)
	ok, err = matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("within tol: ok=%v err=%v", ok, err)
	}

	_ = b.Set(0, 0, 1e-6)
	ok, err = matrix.AllClose(a, b, 0, 1e-8)
	if err != nil {
		t.Fatalf("outside err: %v", err)
	}
	if ok {
		t.Fatalf("outside: expected false, got true")
	}
}

func TestAllClose_ErrorsAndNormalization(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	b := NewFilledDense(t, 2, 3, []float64{0, 0, 0, 0, 0, 0})
	if _, err := matrix.AllClose(a, b, 1e-6, 1e-6); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("dim mismatch: %v", err)
	}
	if _, err := matrix.AllClose(nil, a, 1e-6, 1e-6); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil a: %v", err)
	}
	if _, err := matrix.AllClose(a, nil, 1e-6, 1e-6); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil b: %v", err)
	}
	if _, err := matrix.AllClose(a, a, 1e-6, math.Inf(-1)); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("atol Inf: %v", err)
	}

	c := NewFilledDense(t, 1, 1, []float64{5e-6})
	ok, err := matrix.AllClose(NewFilledDense(t, 1, 1, []float64{0}), c, -1e-5, 1e-5) // negatives abs-ed
	if err != nil {
		t.Fatalf("neg tol err: %v", err)
	}
	if !ok {
		t.Fatalf("neg tol expected true")
	}
}

// Fast path (*Dense) and fallback (non-*Dense) must agree on the boolean result.
func TestAllClose_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})
	for _, delta := range []float64{1e-9, 1e-3} {
		b := NewFilledDense(t, 2, 2, []float64{0, delta, 0, 0})
		okFast, err := matrix.AllClose(a, b, 1e-8, 1e-8)
		if err != nil {
			t.Fatalf("fast err: %v", err)
		}
		okSlow, err := matrix.AllClose(hide{a}, hide{b}, 1e-8, 1e-8)
		if err != nil {
			t.Fatalf("slow err: %v", err)
		}
		if okFast != okSlow {
			t.Fatalf("delta=%g: fast=%v slow=%v", delta, okFast, okSlow)
		}
	}
}
