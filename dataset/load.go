// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

const (
	opLoadMatrix = "LoadMatrix"
	opLoadVector = "LoadVector"
)

type format int

const (
	formatYAML format = iota
	formatJSON
	formatTOML
	formatCSV
)

// formatOf maps a file extension to a document format.
func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	case ".toml":
		return formatTOML, nil
	case ".csv":
		return formatCSV, nil
	default:
		return 0, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// LoadMatrix reads the matrix stored under key in the document at path.
//
// For CSV files the whole file is the matrix and key must be "" or the file
// name without its extension.
//
// Errors:
//   - ErrUnsupportedFormat, ErrKeyNotFound, ErrRagged, ErrEmpty, ErrNotNumeric.
//   - I/O and decoder errors are wrapped as-is.
func LoadMatrix(path, key string) (*matrix.Dense, error) {
	rows, err := loadRows(path, key)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opLoadMatrix, path, err)
	}
	out, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opLoadMatrix, path, err)
	}

	return out, nil
}

// LoadVector reads a flat numeric list stored under key. A single-row or
// single-column matrix, in any format, also counts as a vector; this is the
// shape SaveMatrices writes for VectorMatrix values.
func LoadVector(path, key string) ([]float64, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opLoadVector, path, err)
	}
	if f == formatCSV {
		rows, err := loadRows(path, key)
		if err != nil {
			return nil, fmt.Errorf("%s(%s): %w", opLoadVector, path, err)
		}
		v, err := flatten(rows)
		if err != nil {
			return nil, fmt.Errorf("%s(%s): %w", opLoadVector, path, err)
		}

		return v, nil
	}

	raw, err := lookup(path, f, key)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opLoadVector, path, err)
	}
	v, err := vectorOf(raw)
	if err != nil {
		return nil, fmt.Errorf("%s(%s) key %q: %w", opLoadVector, path, key, err)
	}

	return v, nil
}

// vectorOf accepts a flat list, or a list of rows that flattens to one.
func vectorOf(raw any) ([]float64, error) {
	if list, ok := raw.([]any); ok && len(list) > 0 {
		if _, nested := list[0].([]any); nested {
			rows, err := toRows(raw)
			if err != nil {
				return nil, err
			}
			return flatten(rows)
		}
	}

	return toVector(raw)
}

// Keys lists the top-level entry names of a YAML, JSON or TOML document.
// For CSV it returns the file stem.
func Keys(path string) ([]string, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if f == formatCSV {
		return []string{stem(path)}, nil
	}
	doc, err := decodeDocument(path, f)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys, nil
}

func loadRows(path, key string) ([][]float64, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if f == formatCSV {
		if key != "" && key != stem(path) {
			return nil, fmt.Errorf("key %q (csv holds %q): %w", key, stem(path), ErrKeyNotFound)
		}
		return readCSV(path)
	}

	raw, err := lookup(path, f, key)
	if err != nil {
		return nil, err
	}
	rows, err := toRows(raw)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", key, err)
	}

	return rows, nil
}

// lookup decodes the document and returns the raw value under key.
func lookup(path string, f format, key string) (any, error) {
	doc, err := decodeDocument(path, f)
	if err != nil {
		return nil, err
	}
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}

	return raw, nil
}

func decodeDocument(path string, f format) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	case formatJSON:
		err = json.Unmarshal(data, &doc)
	case formatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return doc, nil
}

// toRows converts a decoded list of lists into a rectangular [][]float64.
func toRows(raw any) ([][]float64, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("want a list of rows, got %T: %w", raw, ErrNotNumeric)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	rows := make([][]float64, len(list))
	var err error
	for i, r := range list {
		if rows[i], err = toVector(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), len(rows[0]), ErrRagged)
		}
	}

	return rows, nil
}

func toVector(raw any) ([]float64, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("want a list of numbers, got %T: %w", raw, ErrNotNumeric)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	out := make([]float64, len(list))
	var err error
	for j, v := range list {
		if out[j], err = toFloat(v); err != nil {
			return nil, fmt.Errorf("index %d: %w", j, err)
		}
	}

	return out, nil
}

// toFloat accepts the numeric types produced by the yaml, json and toml decoders.
func toFloat(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint64:
		f = float64(x)
	default:
		return 0, fmt.Errorf("%v (%T): %w", v, v, ErrNotNumeric)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v: %w", f, ErrNotNumeric)
	}

	return f, nil
}

// readCSV parses one numeric matrix. A first record with no numeric field
// is a header and is skipped; '#' starts a comment line.
func readCSV(path string) ([][]float64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var rows [][]float64
	for line := 0; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		row, perr := parseRecord(rec)
		if perr != nil {
			if line == 0 && isHeader(rec) {
				continue
			}
			return nil, fmt.Errorf("record %d: %w", line, perr)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("record %d has %d values, want %d: %w", line, len(row), len(rows[0]), ErrRagged)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return rows, nil
}

func parseRecord(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("field %d %q: %w", j, field, ErrNotNumeric)
		}
		row[j] = v
	}

	return row, nil
}

// isHeader reports whether no field of rec parses as a number. A first
// record mixing numbers and text is a malformed sample, not a header.
func isHeader(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return true
}

// flatten turns a 1×m or n×1 matrix into a vector.
func flatten(rows [][]float64) ([]float64, error) {
	switch {
	case len(rows) == 1:
		return rows[0], nil
	case len(rows[0]) == 1:
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = r[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%dx%d is not a vector: %w", len(rows), len(rows[0]), ErrNotVector)
	}
}

func stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
