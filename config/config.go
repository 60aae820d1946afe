// SPDX-License-Identifier: MIT

// Package config provides configuration loading for sqmatrix.
//
// Configuration comes from at most one YAML file, named by:
//   - the --config flag, or
//   - the SQMATRIX_CONFIG environment variable.
//
// With neither set, Default() applies. Values present in the file override
// the defaults field by field; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// EnvConfig names the environment variable consulted when no --config flag is given.
const EnvConfig = "SQMATRIX_CONFIG"

// ErrInvalidConfig is returned (joined with the individual problems) by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatAuto = "auto" // text on a terminal, JSON otherwise
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the complete sqmatrix configuration.
type Config struct {
	// Render controls how matrices are printed.
	Render RenderConfig `yaml:"render"`

	// Log controls the structured logger.
	Log LogConfig `yaml:"log"`
}

// RenderConfig mirrors the matrix render options.
type RenderConfig struct {
	// CellWidth is the fixed column width of every printed cell.
	CellWidth int `yaml:"cell_width"`

	// Precision is the number of significant digits for float cells.
	Precision int `yaml:"precision"`
}

// LogConfig configures log/slog.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is one of auto, text, json.
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			CellWidth: matrix.DefaultCellWidth,
			Precision: matrix.DefaultPrecision,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load resolves the config path (flagPath, then $SQMATRIX_CONFIG) and loads
// it over the defaults. An empty resolved path yields Default().
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// An empty document yields Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Render.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("render.cell_width must be >= 1, got %d", c.Render.CellWidth))
	}
	if c.Render.Precision < 1 {
		errs = append(errs, fmt.Errorf("render.precision must be >= 1, got %d", c.Render.Precision))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	formats := []string{FormatAuto, FormatText, FormatJSON}
	if !slices.Contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// SlogLevel maps Level onto a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: must be one of debug, info, warn, error", l.Level)
	}

	return level, nil
}
