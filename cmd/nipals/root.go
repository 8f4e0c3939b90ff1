// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Cimergence/chemometrics-notebook/dataset"
	"github.com/Cimergence/chemometrics-notebook/internal/config"
	"github.com/Cimergence/chemometrics-notebook/nipals"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "NIPALS principal component decomposition",
		Version: version,
		Long: `nipals extracts principal components from a data matrix one at a time
with the NIPALS iteration and reports scores (T) and loadings (P).

Matrices are read from YAML, JSON or TOML documents (by key) or CSV files.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML or TOML settings file; flags override it")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(newDecomposeCmd(), newCompareCmd())

	return rootCmd
}

// addDecompositionFlags registers the flags shared by every command that
// runs a decomposition.
func addDecompositionFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.String("input", "", "Data file (.yaml, .yml, .json, .toml, .csv)")
	fs.String("key", d.Input.Key, "Matrix key inside the data file")
	fs.Int("components", d.Components, "Number of components to extract")
	fs.Float64("tol", d.Tolerance, "Convergence tolerance on the score update")
	fs.Int("max-iter", d.MaxIterations, "Iteration cap per component")
	fs.Float64("degeneracy-tol", d.DegeneracyTolerance, "Relative threshold below which a component counts as zero")
}

// resolveConfig loads --config and applies every flag the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if fs.Changed("input") {
		cfg.Input.Path, _ = fs.GetString("input")
	}
	if fs.Changed("key") {
		cfg.Input.Key, _ = fs.GetString("key")
	}
	if fs.Changed("components") {
		cfg.Components, _ = fs.GetInt("components")
	}
	if fs.Changed("tol") {
		cfg.Tolerance, _ = fs.GetFloat64("tol")
	}
	if fs.Changed("max-iter") {
		cfg.MaxIterations, _ = fs.GetInt("max-iter")
	}
	if fs.Changed("degeneracy-tol") {
		cfg.DegeneracyTolerance, _ = fs.GetFloat64("degeneracy-tol")
	}
	if fs.Changed("out") {
		cfg.Output.Path, _ = fs.GetString("out")
	}
	if fs.Changed("log-level") {
		cfg.Log.Level, _ = fs.GetString("log-level")
	}

	if cfg.Input.Path == "" {
		return config.Config{}, fmt.Errorf("%w: no input file (use --input or input.path)", config.ErrInvalid)
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runDecomposition loads the configured matrix and decomposes it.
func runDecomposition(cfg config.Config, logger zerolog.Logger) (*nipals.Result, error) {
	X, err := dataset.LoadMatrix(cfg.Input.Path, cfg.Input.Key)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	logger.Info().
		Str("input", cfg.Input.Path).
		Int("rows", X.Rows()).
		Int("cols", X.Cols()).
		Int("components", cfg.Components).
		Msg("Decomposing")

	res, err := nipals.Decompose(X, cfg.Components,
		nipals.WithOptions(cfg.NIPALSOptions()),
		nipals.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return res, nil
}
