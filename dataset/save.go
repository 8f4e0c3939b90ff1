// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

const opSaveMatrices = "SaveMatrices"

// SaveMatrices writes the named matrices as a YAML (.yaml, .yml) or TOML
// (.toml) document. Keys are emitted in sorted order; values round-trip
// exactly through LoadMatrix.
//
// Errors:
//   - ErrEmpty for an empty map or a nil matrix.
//   - ErrUnsupportedFormat for other extensions.
func SaveMatrices(path string, named map[string]*matrix.Dense) error {
	if len(named) == 0 {
		return fmt.Errorf("%s(%s): %w", opSaveMatrices, path, ErrEmpty)
	}
	doc := make(map[string][][]float64, len(named))
	for name, m := range named {
		if m == nil {
			return fmt.Errorf("%s(%s) key %q: %w", opSaveMatrices, path, name, ErrEmpty)
		}
		rows := make([][]float64, m.Rows())
		var err error
		for i := range rows {
			if rows[i], err = m.Row(i); err != nil {
				return fmt.Errorf("%s(%s) key %q: %w", opSaveMatrices, path, name, err)
			}
		}
		doc[name] = rows
	}

	data, err := encodeDocument(path, doc)
	if err != nil {
		return fmt.Errorf("%s(%s): %w", opSaveMatrices, path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s(%s): %w", opSaveMatrices, path, err)
	}

	return nil
}

// VectorMatrix wraps v as a 1×len(v) matrix, the shape SaveMatrices uses
// for per-feature vectors such as column means.
func VectorMatrix(v []float64) (*matrix.Dense, error) {
	return matrix.NewDenseFrom([][]float64{v})
}

func encodeDocument(path string, doc map[string][][]float64) ([]byte, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case formatYAML:
		return yaml.Marshal(doc)
	case formatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("writing %q: %w", path, ErrUnsupportedFormat)
	}
}
