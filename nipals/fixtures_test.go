// SPDX-License-Identifier: MIT

package nipals_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

// spectrumFixture builds an n×m matrix whose centered part is exactly
// U·diag(sv)·Vᵀ with orthonormal U (columns ⊥ ones) and V, then shifts
// column j by offset·(j+1). NIPALS on it must recover ±sv[i]·U[:,i] and
// ±V[:,i]. Requires n > m.
func spectrumFixture(t *testing.T, n, m int, sv []float64, offset float64, seed int64) *matrix.Dense {
	t.Helper()
	require.Greater(t, n, m, "fixture needs more samples than features")
	require.Len(t, sv, m)

	rng := rand.New(rand.NewSource(seed))
	raw := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			raw.Set(i, j, rng.NormFloat64())
		}
	}
	// Centering puts every left singular vector orthogonal to the ones vector.
	for j := 0; j < m; j++ {
		col := mat.Col(nil, j, raw)
		var mean float64
		for _, v := range col {
			mean += v
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			raw.Set(i, j, col[i]-mean)
		}
	}

	var svd mat.SVD
	require.True(t, svd.Factorize(raw, mat.SVDThin), "fixture SVD")
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)

	var US, X mat.Dense
	US.Mul(&U, mat.NewDiagDense(m, sv))
	X.Mul(&US, V.T())
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			X.Set(i, j, X.At(i, j)+offset*float64(j+1))
		}
	}

	out, err := matrix.FromGonum(&X)
	require.NoError(t, err)

	return out
}

// referenceSVD returns the thin SVD of the column-centered X as gonum values.
func referenceSVD(t *testing.T, X *matrix.Dense) (U, V *mat.Dense, sv []float64) {
	t.Helper()
	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)

	var svd mat.SVD
	require.True(t, svd.Factorize(Xc.ToGonum(), mat.SVDThin), "reference SVD")
	U, V = new(mat.Dense), new(mat.Dense)
	svd.UTo(U)
	svd.VTo(V)

	return U, V, svd.Values(nil)
}

// column returns a copy of column j of a Dense or fails.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	col, err := m.Col(j)
	require.NoError(t, err)

	return col
}

// alignSign flips got in place when it points away from want.
func alignSign(got, want []float64) {
	var dot float64
	for i := range got {
		dot += got[i] * want[i]
	}
	if dot < 0 {
		for i := range got {
			got[i] = -got[i]
		}
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm2(a []float64) float64 { return math.Sqrt(dot(a, a)) }

// requireVecClose compares vectors entry-wise with an absolute tolerance.
func requireVecClose(t *testing.T, got, want []float64, atol float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, want[i], got[i], atol, msgAndArgs...)
	}
}
