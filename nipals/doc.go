// SPDX-License-Identifier: MIT

// Package nipals extracts principal score/loading pairs from a numeric data
// matrix with the NIPALS (Nonlinear Iterative Partial Least Squares)
// algorithm, one component at a time.
//
// 🚀 What is NIPALS?
//
//	NIPALS finds the direction of maximum remaining variance by a
//	fixed-point iteration between a score vector t (one value per sample)
//	and a unit loading vector p (one weight per feature), then removes
//	that component from the data (deflation) and repeats. It is the
//	classic workhorse behind PCA in chemometrics and the first stage of
//	PLS/PCR pipelines.
//
// ✨ Key features:
//   - copy-on-entry: the caller's matrix is never mutated
//   - deterministic seeding from the first column of the residual
//   - bounded inner loop with an explicit ErrConvergenceFailure
//   - exhausted variance reported as ErrDegenerateComponent, never NaN columns
//   - all-or-nothing results: no partial T/P on failure
//   - auxiliary outputs: column means, final residual, per-component iterations
//
// ⚙️ Usage:
//
//	import "github.com/Cimergence/chemometrics-notebook/nipals"
//
//	res, err := nipals.Decompose(X, 3,
//	  nipals.WithTolerance(1e-6),
//	  nipals.WithMaxIterations(500),
//	)
//	if err != nil {
//	  // errors.Is(err, nipals.ErrDegenerateComponent) → lower the component count
//	  // errors.Is(err, nipals.ErrConvergenceFailure)  → relax tol / raise the cap
//	}
//	T, P := res.Scores, res.Loadings // n×k and m×k
//
// Algorithm (per component i on residual Rᵢ, R₀ = X − mean):
//
//  1. t ← first column of Rᵢ
//  2. repeat at most MaxIterations times:
//     p ← Rᵢᵀt / (tᵀt);  p ← p / ‖p‖₂;  t' ← Rᵢp
//     stop when ‖t' − t‖₂ < Tolerance, else t ← t'
//  3. T[:, i] ← t', P[:, i] ← p
//  4. Rᵢ₊₁ ← Rᵢ − t'pᵀ
//
// Performance:
//
//   - Time:   O(k · I · n · m), I = inner iterations per component
//   - Memory: O(n · m) for the working residual plus O(n + m) per iterate
//
// The package is safe for concurrent use: every call owns its own working
// copy and there is no package-level mutable state.
package nipals
