// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/transpile/internal/config"
	"github.com/dacolabs/transpile/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	packageName string
	edition     string
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a transpile project",
		Long: `Initialize a transpile project with a transpile.yaml configuration file.
The file holds the default formatting settings and per-target option blocks
that the translate command picks up automatically.`,
		Example: `  # Create transpile.yaml in the current directory
  transpile init

  # Preset the Go package name
  transpile init --package-name cipher`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.packageName, "package-name", "", "Default package clause for generated Go code")
	cmd.Flags().StringVar(&opts.edition, "edition", "2021", "Default Rust edition")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("transpile.yaml already exists; project already initialized")
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Rust:    config.RustTarget{Edition: opts.edition},
		Go:      config.GoTarget{PackageName: opts.packageName},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cfgPath},
	}, "Project initialized")

	return nil
}
