// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	// Import backends to auto-register
	_ "github.com/dacolabs/transpile/internal/backend/golang"
	_ "github.com/dacolabs/transpile/internal/backend/rust"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "transpile",
		Short: "Translate JavaScript ASTs into Rust or Go source",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	registerInitCmd(rootCmd)
	registerTranslateCmd(rootCmd)
	registerLanguagesCmd(rootCmd)
	registerValidateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
