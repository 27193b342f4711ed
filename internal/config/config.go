// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads crawfish.yaml, the configuration file read by the
// crawfish command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up when no explicit
// path is given.
const FileName = "crawfish.yaml"

// Color modes accepted by [Config.Color].
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the contents of a configuration file. Command-line flags take
// precedence over every field.
type Config struct {
	// When to colorize diagnostics: "auto", "always" or "never".
	Color string `yaml:"color"`
	// Render diagnostics on a single line each.
	Compact bool `yaml:"compact"`
	// Keep lexing a file after its first error.
	Continue bool `yaml:"continue"`
	// Number of files lexed at once. Zero picks a default.
	Jobs int `yaml:"jobs"`
	// Directories that file patterns are resolved against.
	ImportPaths []string `yaml:"import_paths"`
	// Globs of files to skip, matched against resolved paths.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads the configuration file at path.
//
// If path is empty, Load looks for [FileName] in the working directory and
// returns [Default] if it does not exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read configuration from %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration from %q: %w", path, err)
	}

	// Relative import paths are relative to the file that names them.
	dir := filepath.Dir(path)
	for i, p := range cfg.ImportPaths {
		if !filepath.IsAbs(p) {
			cfg.ImportPaths[i] = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}

// Parse decodes a configuration from YAML. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds an acceptable value.
func (c Config) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("invalid color mode %q; expected auto, always or never", c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, glob := range c.Exclude {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("invalid exclude pattern %q", glob)
		}
	}
	return nil
}

// Excluded reports whether path matches one of the exclude globs.
func (c Config) Excluded(path string) bool {
	path = filepath.ToSlash(path)
	for _, glob := range c.Exclude {
		if doublestar.MatchUnvalidated(glob, path) {
			return true
		}
	}
	return false
}
