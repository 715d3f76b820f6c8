// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the CLI defaults shared by featseq commands. Flags
// take precedence over everything here; the file only moves defaults.
type Config struct {
	// Tolerance is the encoder rounding tolerance. Zero selects the
	// encoder's built-in default.
	Tolerance float64 `yaml:"tolerance"`

	// Format is the default payload container format: "json" or
	// "cbor".
	Format string `yaml:"format"`

	// Compress is the default payload compression: "none", "zstd" or
	// "lz4".
	Compress string `yaml:"compress"`

	// Pretty indents JSON output by default.
	Pretty bool `yaml:"pretty"`
}

var (
	formatValues   = []string{"json", "cbor"}
	compressValues = []string{"none", "zstd", "lz4"}
)

// Default returns the default configuration: compact uncompressed
// JSON at the encoder's default tolerance.
func Default() *Config {
	return &Config{
		Tolerance: 0,
		Format:    "json",
		Compress:  "none",
		Pretty:    false,
	}
}

// Load loads configuration from the file named by the FEATSEQ_CONFIG
// environment variable. The configuration is optional: with
// FEATSEQ_CONFIG unset, Load returns the defaults (still subject to
// the FEATSEQ_TOLERANCE and FEATSEQ_FORMAT overrides).
func Load() (*Config, error) {
	if path := os.Getenv("FEATSEQ_CONFIG"); path != "" {
		return LoadFile(path)
	}

	cfg := Default()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from an explicit file path, as given
// by a --config flag. The file must exist and parse: a command
// pointed at a missing or broken file fails loudly rather than
// falling back to defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Strict decoding: a misspelled key is a configuration bug, not a
	// value to silently drop. An empty file is valid and leaves the
	// defaults in place.
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvOverrides applies FEATSEQ_TOLERANCE and FEATSEQ_FORMAT over
// whatever the file set. These are the only environment overrides;
// everything else comes from the file or from flags.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("FEATSEQ_TOLERANCE"); v != "" {
		tolerance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FEATSEQ_TOLERANCE: %w", err)
		}
		c.Tolerance = tolerance
	}
	if v := os.Getenv("FEATSEQ_FORMAT"); v != "" {
		c.Format = v
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance))
	}
	if !slices.Contains(formatValues, c.Format) {
		errs = append(errs, fmt.Errorf("format %q must be one of: %v", c.Format, formatValues))
	}
	if !slices.Contains(compressValues, c.Compress) {
		errs = append(errs, fmt.Errorf("compress %q must be one of: %v", c.Compress, compressValues))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
