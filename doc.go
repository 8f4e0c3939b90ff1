// Package chemometrics is a small numeric toolkit for spectral data
// analysis, built around the NIPALS principal component decomposition.
//
// 🚀 What is inside?
//
//	• matrix/     dense row-major matrices with validated access, centering,
//	              products, norms and gonum interop
//	• nipals/     component-by-component extraction of scores (T) and unit
//	              loadings (P), with projection, reconstruction and
//	              explained variance
//	• dataset/    named matrices and vectors from YAML, JSON, TOML and CSV
//	• cmd/nipals  command line: decompose a file, compare a column with
//	              reference values
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every call owns its working copy.
//   - Failures are typed: errors.Is against the package sentinels, errors.As
//     for per-component details. No partial results on failure.
//   - Deterministic: the same input and settings give bit-identical output.
//
// Quick example:
//
//	X, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}, {3, 6}})
//	T, P, err := nipals.NIPALS(X, 1, 1e-6, 500)
//	// T ≈ [[-2.236], [0], [2.236]], P ≈ [[0.447], [0.894]]
//
//	go install github.com/Cimergence/chemometrics-notebook/cmd/nipals@latest
package chemometrics
