// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrKeyNotFound is returned when the document has no entry under the requested key.
	ErrKeyNotFound = errors.New("dataset: key not found")

	// ErrRagged is returned when matrix rows differ in length.
	ErrRagged = errors.New("dataset: ragged rows")

	// ErrEmpty is returned for a matrix or vector with no values.
	ErrEmpty = errors.New("dataset: empty data")

	// ErrNotNumeric is returned when an entry is not a finite number.
	ErrNotNumeric = errors.New("dataset: non-numeric value")

	// ErrNotVector is returned when a vector was requested but the stored
	// matrix has more than one row and more than one column.
	ErrNotVector = errors.New("dataset: not a vector")

	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")
)
