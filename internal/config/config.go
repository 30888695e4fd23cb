// SPDX-License-Identifier: MIT

// Package config holds the command-line settings for rankvote: defaults,
// optional YAML file loading and struct-tag validation.
//
// Precedence (lowest to highest): Default(), the YAML file, explicit flags.
// Flag merging happens in cmd/rankvote, which knows which flags were set.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rankvote/internal/ingest"
)

var (
	// ErrRead is returned when the config file cannot be read or decoded.
	ErrRead = errors.New("config: cannot load file")

	// ErrInvalid is returned when a loaded or merged Config fails validation.
	ErrInvalid = errors.New("config: invalid settings")
)

// Config is the full set of knobs. YAML keys match the long flag names.
type Config struct {
	// Input is a CSV path; empty means stdin.
	Input string `yaml:"input"`
	// Start is the zero-based first rank column.
	Start int `yaml:"start" validate:"gte=0"`
	// Len is the number of rank columns; 0 means all columns from Start on.
	Len int `yaml:"len" validate:"gte=0"`
	// IndexedAt is the value of the most preferred rank.
	IndexedAt int `yaml:"indexed-at" validate:"gte=0"`
	// Raw prints winners only, one per line.
	Raw bool `yaml:"raw"`
	// Color enables styled output when stdout is a terminal.
	Color bool `yaml:"color"`
	// Verbose lowers the log level to debug.
	Verbose bool `yaml:"verbose"`
	// LogJSON switches stderr logs to JSON.
	LogJSON bool `yaml:"log-json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Start:     0,
		IndexedAt: 1,
		Color:     true,
	}
}

// Load reads a YAML file on top of Default(). Unknown keys are rejected so a
// misspelt setting does not silently fall back to its default.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrRead, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return cfg, cfg.Validate()
}

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// IngestOptions projects the column settings for the CSV reader.
func (c Config) IngestOptions() ingest.Options {
	return ingest.Options{Start: c.Start, Len: c.Len, IndexedAt: c.IndexedAt}
}
