// SPDX-License-Identifier: MIT

// Package config holds the run settings of the nipals command: the
// decomposition tunables plus input, output and logging.
//
// Settings come from a YAML (.yaml, .yml) or TOML (.toml) file; fields
// left out keep their defaults. Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Cimergence/chemometrics-notebook/nipals"
)

// ErrInvalid is returned by Validate and Load for unusable settings.
var ErrInvalid = errors.New("config: invalid settings")

// Config is the full run configuration.
type Config struct {
	Components          int     `yaml:"components" toml:"components"`
	Tolerance           float64 `yaml:"tolerance" toml:"tolerance"`
	MaxIterations       int     `yaml:"max_iterations" toml:"max_iterations"`
	DegeneracyTolerance float64 `yaml:"degeneracy_tolerance" toml:"degeneracy_tolerance"`

	Input  Input  `yaml:"input" toml:"input"`
	Output Output `yaml:"output" toml:"output"`
	Log    Log    `yaml:"log" toml:"log"`
}

// Input names the matrix to decompose.
type Input struct {
	Path string `yaml:"path" toml:"path"`
	Key  string `yaml:"key" toml:"key"`
}

// Output is where T, P and the means are written; empty disables saving.
type Output struct {
	Path string `yaml:"path" toml:"path"`
}

// Log controls the command's logger.
type Log struct {
	Level   string `yaml:"level" toml:"level"`
	Console bool   `yaml:"console" toml:"console"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Components:          1,
		Tolerance:           nipals.DefaultTolerance,
		MaxIterations:       nipals.DefaultMaxIterations,
		DegeneracyTolerance: nipals.DefaultDegeneracyTolerance,
		Input:               Input{Key: "X"},
		Log:                 Log{Level: zerolog.LevelInfoValue, Console: true},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config %q: unknown extension: %w", path, ErrInvalid)
	}
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate applies the decomposer's own option rules, then checks the
// component count and the log level.
func (c Config) Validate() error {
	if err := c.NIPALSOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Components < 1 {
		return fmt.Errorf("%w: components must be >= 1, got %d", ErrInvalid, c.Components)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}

	return nil
}

// NIPALSOptions maps the tunables onto the decomposer options.
// The logger stays disabled; pass WithLogger separately.
func (c Config) NIPALSOptions() nipals.Options {
	o := nipals.DefaultOptions()
	o.Tolerance = c.Tolerance
	o.MaxIterations = c.MaxIterations
	o.DegeneracyTolerance = c.DegeneracyTolerance

	return o
}

// Logger builds the command logger on w: a console writer when Log.Console
// is set, JSON lines otherwise. An empty or unknown level falls back to info.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if c.Log.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
