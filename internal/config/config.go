// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles transpile project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/transpile/internal/backend"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the transpile configuration file.
const FileName = "transpile.yaml"

// Config represents the transpile.yaml project configuration file.
type Config struct {
	Version    int    `yaml:"version"`
	Indent     string `yaml:"indent,omitempty"`
	LineEnding string `yaml:"lineEnding,omitempty"`
	Comments   bool   `yaml:"comments,omitempty"`

	Rust RustTarget `yaml:"rust,omitempty"`
	Go   GoTarget   `yaml:"go,omitempty"`
}

// RustTarget holds options that only affect the Rust backend.
type RustTarget struct {
	Edition     string `yaml:"edition,omitempty"`
	NoStd       bool   `yaml:"noStd,omitempty"`
	ZeroCopy    bool   `yaml:"zeroCopy,omitempty"`
	StrictTypes bool   `yaml:"strictTypes,omitempty"`
}

// GoTarget holds options that only affect the Go backend.
type GoTarget struct {
	PackageName   string `yaml:"packageName,omitempty"`
	ErrorHandling bool   `yaml:"errorHandling,omitempty"`
	StrictTypes   bool   `yaml:"strictTypes,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.LineEnding != "" && c.LineEnding != "\n" && c.LineEnding != "\r\n" {
		return fmt.Errorf("invalid lineEnding %q", c.LineEnding)
	}
	switch c.Rust.Edition {
	case "", "2015", "2018", "2021", "2024":
	default:
		return fmt.Errorf("invalid rust edition %q", c.Rust.Edition)
	}
	return nil
}

// Options resolves the configuration into backend options for one target
// language. Unknown languages get the shared settings only.
func (c *Config) Options(language string) backend.Options {
	opts := backend.Options{
		Indent:      c.Indent,
		LineEnding:  c.LineEnding,
		AddComments: c.Comments,
	}
	switch language {
	case "rust":
		opts.Edition = c.Rust.Edition
		opts.NoStd = c.Rust.NoStd
		opts.UseZeroCopy = c.Rust.ZeroCopy
		opts.StrictTypes = c.Rust.StrictTypes
	case "go":
		opts.PackageName = c.Go.PackageName
		opts.ErrorHandling = c.Go.ErrorHandling
		opts.StrictTypes = c.Go.StrictTypes
	}
	return opts
}
