// SPDX-License-Identifier: MIT

// Package dataset reads and writes the named matrices the decomposer works on.
//
// Supported documents:
//   - YAML (.yaml, .yml) and JSON (.json): a top-level mapping name → rows,
//     where rows is a list of equal-length numeric lists (a matrix) or a flat
//     numeric list (a vector).
//   - TOML (.toml): the same mapping expressed as top-level array keys.
//   - CSV (.csv): a single matrix per file with an optional non-numeric
//     header row; the matrix is addressed by the file stem or by "".
//
// Integers and floats are both accepted; every value must be finite.
// Save writes YAML or TOML depending on the extension, with keys in sorted
// order so outputs diff cleanly.
package dataset
