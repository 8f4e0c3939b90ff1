// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric substrate used by the NIPALS
// decomposer: a row-major float64 Dense type behind a small Matrix
// interface, sentinel errors, validators, column statistics and the few
// linear-algebra kernels a score/loading decomposition needs.
//
// The package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set, Row/Col copies
//     and deep Clone. Public accessors return errors instead of panicking.
//   - Statistics: ColumnMeans and CenterColumns (copy-based, never in place).
//   - Kernels: Mul, Transpose, Sub, MatVec, FrobeniusNorm and AllClose with
//     *Dense fast-paths and a generic At/Set fallback.
//   - Interop: FromGonum and (*Dense).ToGonum bridge to gonum/mat.
//
// Determinism:
//
//	Every loop walks rows then columns in a fixed order; there is no map
//	iteration and no randomness anywhere in the package.
//
// Errors:
//
//	All failures are sentinels from errors.go, wrapped as "<Op>: <sentinel>"
//	at the operation boundary. Match them with errors.Is.
package matrix
