// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cimergence/chemometrics-notebook/dataset"
	"github.com/Cimergence/chemometrics-notebook/matrix"
	"github.com/Cimergence/chemometrics-notebook/nipals"
)

func newDecomposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Extract scores and loadings from a data matrix",
		Long: `Decompose loads the input matrix, extracts the requested number of
components and prints the shapes of T and P with per-component iteration
counts and explained variance. With --out, T, P and the column means are
written as a YAML or TOML document.`,
		Example: `  nipals decompose --input spectra.yaml --key X --components 7 --tol 1e-3
  nipals decompose --config run.yaml --out model.toml`,
		RunE: runDecompose,
	}
	addDecompositionFlags(cmd.Flags())
	cmd.Flags().String("out", "", "Write T, P and means to this .yaml/.toml file")

	return cmd
}

func runDecompose(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	res, err := runDecomposition(cfg, logger)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res)

	if cfg.Output.Path == "" {
		return nil
	}
	means, err := dataset.VectorMatrix(res.Means)
	if err != nil {
		return err
	}
	err = dataset.SaveMatrices(cfg.Output.Path, map[string]*matrix.Dense{
		"T":     res.Scores,
		"P":     res.Loadings,
		"means": means,
	})
	if err != nil {
		return fmt.Errorf("save output: %w", err)
	}
	logger.Info().Str("path", cfg.Output.Path).Msg("Model written")

	return nil
}

// printSummary writes the human-readable report of one decomposition.
func printSummary(w io.Writer, res *nipals.Result) {
	n, k := res.Scores.Shape()
	m, _ := res.Loadings.Shape()
	fmt.Fprintf(w, "T: %dx%d\n", n, k)
	fmt.Fprintf(w, "P: %dx%d\n", m, k)

	ratio := res.ExplainedVarianceRatio()
	var cum float64
	fmt.Fprintln(w, "component  iterations  explained  cumulative")
	for c := 0; c < k; c++ {
		cum += ratio[c]
		fmt.Fprintf(w, "%9d  %10d  %9.4f  %10.4f\n", c, res.Iterations[c], ratio[c], cum)
	}
}
