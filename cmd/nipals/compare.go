// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/Cimergence/chemometrics-notebook/dataset"
	"github.com/Cimergence/chemometrics-notebook/nipals"
)

// errMismatch makes the command exit non-zero when a column is out of tolerance.
var errMismatch = errors.New("column differs from reference")

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one score or loading column with reference values",
		Long: `Compare decomposes the input and checks a single column of T (or of P
with --loadings) against a reference vector. Components are defined up to
sign, so the reference is matched against the column or its negation,
whichever is closer. The command fails when the largest absolute
difference exceeds --atol.`,
		Example: `  nipals compare --input spectra.yaml --key X --components 7 --tol 1e-3 \
      --reference expected.yaml --ref-key t1 --column 0 --atol 1e-3`,
		RunE: runCompare,
	}
	addDecompositionFlags(cmd.Flags())
	cmd.Flags().String("reference", "", "File holding the reference vector")
	cmd.Flags().String("ref-key", "", "Vector key inside the reference file")
	cmd.Flags().Int("column", 0, "Zero-based component column to compare")
	cmd.Flags().Bool("loadings", false, "Compare a loading column of P instead of T")
	cmd.Flags().Float64("atol", 1e-3, "Largest allowed absolute difference")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	refPath, _ := fs.GetString("reference")
	refKey, _ := fs.GetString("ref-key")
	column, _ := fs.GetInt("column")
	useLoadings, _ := fs.GetBool("loadings")
	atol, _ := fs.GetFloat64("atol")
	if column < 0 {
		return fmt.Errorf("--column must be >= 0, got %d", column)
	}
	if column >= cfg.Components {
		cfg.Components = column + 1
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	ref, err := dataset.LoadVector(refPath, refKey)
	if err != nil {
		return fmt.Errorf("load reference: %w", err)
	}
	res, err := runDecomposition(cfg, logger)
	if err != nil {
		return err
	}
	got, name, err := selectColumn(res, column, useLoadings)
	if err != nil {
		return err
	}
	if len(got) != len(ref) {
		return fmt.Errorf("%s column %d has %d values, reference has %d", name, column, len(got), len(ref))
	}

	diff, sign := compareUpToSign(got, ref)
	fmt.Fprintf(cmd.OutOrStdout(), "%s[:,%d] vs %s: max |diff| = %.6g (sign %+d, atol %g)\n",
		name, column, refPath, diff, sign, atol)
	if diff > atol {
		return fmt.Errorf("%s[:,%d]: %.6g > %g: %w", name, column, diff, atol, errMismatch)
	}

	return nil
}

func selectColumn(res *nipals.Result, column int, loadings bool) ([]float64, string, error) {
	if loadings {
		col, err := res.Loadings.Col(column)
		return col, "P", err
	}
	col, err := res.Scores.Col(column)

	return col, "T", err
}

// compareUpToSign returns the max-norm distance between got and ref after
// flipping got when that brings it closer, and the sign applied.
func compareUpToSign(got, ref []float64) (float64, int) {
	pos := floats.Distance(got, ref, math.Inf(1))
	flipped := make([]float64, len(got))
	floats.ScaleTo(flipped, -1, got)
	neg := floats.Distance(flipped, ref, math.Inf(1))
	if neg < pos {
		return neg, -1
	}

	return pos, 1
}
