// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cimergence/chemometrics-notebook/internal/config"
	"github.com/Cimergence/chemometrics-notebook/nipals"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndTOML(t *testing.T) {
	t.Parallel()

	yamlPath := writeFile(t, "run.yaml", `
components: 7
tolerance: 1.0e-3
max_iterations: 800
input: { path: data.yaml, key: spectra }
output: { path: out.yaml }
log: { level: debug, console: false }
`)
	tomlPath := writeFile(t, "run.toml", `
components = 7
tolerance = 1.0e-3
max_iterations = 800

[input]
path = "data.yaml"
key = "spectra"

[output]
path = "out.yaml"

[log]
level = "debug"
console = false
`)

	for _, path := range []string{yamlPath, tomlPath} {
		cfg, err := config.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, 7, cfg.Components)
		assert.Equal(t, 1e-3, cfg.Tolerance)
		assert.Equal(t, 800, cfg.MaxIterations)
		assert.Equal(t, nipals.DefaultDegeneracyTolerance, cfg.DegeneracyTolerance, "unset field keeps its default")
		assert.Equal(t, config.Input{Path: "data.yaml", Key: "spectra"}, cfg.Input)
		assert.Equal(t, "out.yaml", cfg.Output.Path)
		assert.Equal(t, config.Log{Level: "debug", Console: false}, cfg.Log)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, file, body string
	}{
		{"zero tolerance", "a.yaml", "tolerance: 0\n"},
		{"zero iterations", "a.yaml", "max_iterations: 0\n"},
		{"negative degeneracy", "a.yaml", "degeneracy_tolerance: -1\n"},
		{"zero components", "a.yaml", "components: 0\n"},
		{"bad level", "a.yaml", "log: { level: loud }\n"},
		{"unknown extension", "a.ini", "components = 2\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "broken.yaml", "components: [\n"))
	assert.Error(t, err)
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_WrapsDecomposerRules(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Tolerance = -1
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, nipals.ErrInvalidArgument)
}

func TestNIPALSOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Tolerance, cfg.MaxIterations, cfg.DegeneracyTolerance = 1e-4, 42, 1e-8
	o := cfg.NIPALSOptions()
	assert.Equal(t, 1e-4, o.Tolerance)
	assert.Equal(t, 42, o.MaxIterations)
	assert.Equal(t, 1e-8, o.DegeneracyTolerance)
}

func TestLogger_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log = config.Log{Level: "warn", Console: false}
	logger := cfg.Logger(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"k":"v"`)

	buf.Reset()
	cfg.Log = config.Log{Level: "", Console: true}
	logger = cfg.Logger(&buf)
	logger.Info().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
	assert.NotContains(t, buf.String(), `"message"`)
}
