// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/dacolabs/transpile/internal/config"
	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/dacolabs/transpile/internal/prompts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	input         string
	language      string
	output        string
	indent        string
	comments      bool
	strictTypes   bool
	zeroCopy      bool
	errorHandling bool
	packageName   string
	edition       string
	noStd         bool
}

func registerTranslateCmd(parent *cobra.Command) {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate a JavaScript AST file to a target language",
		Long: fmt.Sprintf(`Translate an ESTree JSON document (as produced by acorn or esprima)
into source code for a target language.

Available languages: %s`, strings.Join(backend.Available(), ", ")),
		Example: `  # Interactive mode
  transpile translate

  # Translate to Rust
  transpile translate -i cipher.ast.json -l rust

  # Translate to Go with an error-return channel
  transpile translate -i cipher.ast.json -l go --error-handling --package-name cipher

  # Read the AST from stdin
  cat cipher.ast.json | transpile translate -i - -l rust -o generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input ESTree JSON file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", fmt.Sprintf("Target language (%s)", strings.Join(backend.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "generated", "Output directory")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "Indent string for generated code")
	cmd.Flags().BoolVar(&opts.comments, "comments", false, "Emit doc comments and the generated-file banner")
	cmd.Flags().BoolVar(&opts.strictTypes, "strict-types", false, "Default unknown types to the 32-bit working type")
	cmd.Flags().BoolVar(&opts.zeroCopy, "zero-copy", false, "Prefer slice parameters over owned collections (rust)")
	cmd.Flags().BoolVar(&opts.errorHandling, "error-handling", false, "Add an error result to generated functions (go)")
	cmd.Flags().StringVar(&opts.packageName, "package-name", "", "Package clause for generated Go code")
	cmd.Flags().StringVar(&opts.edition, "edition", "", "Rust edition header")
	cmd.Flags().BoolVar(&opts.noStd, "no-std", false, "Emit a #![no_std] Rust crate header")

	parent.AddCommand(cmd)
}

func runTranslate(cmd *cobra.Command, opts *translateOptions) error {
	// Prompt for any missing values
	err := prompts.RunTranslateForm(
		&opts.input, &opts.language, &opts.output,
		!cmd.Flags().Changed("output"),
		backend.Available(),
	)
	if err != nil {
		return err
	}

	if opts.input == "" {
		return fmt.Errorf("no input file selected")
	}

	b, err := backend.Get(opts.language)
	if err != nil {
		return fmt.Errorf("unsupported language %q. Available languages: %s",
			opts.language, strings.Join(backend.Available(), ", "))
	}

	data, sourceName, err := readInput(opts.input)
	if err != nil {
		return err
	}
	log.Debug().Str("input", sourceName).Int("bytes", len(data)).Msg("loaded AST document")

	program, err := jsast.Decode(data)
	if err != nil {
		return err
	}

	genOpts, err := resolveOptions(cmd, opts, sourceName)
	if err != nil {
		return err
	}

	result, err := b.Generate(program, genOpts)
	if err != nil {
		return err
	}
	log.Debug().Str("language", b.Name()).Int("warnings", len(result.Warnings)).Msg("generation complete")

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	base = strings.TrimSuffix(base, ".ast")
	outFile := filepath.Join(opts.output, base+b.FileExtension())

	if err := os.WriteFile(outFile, []byte(result.Code), 0o600); err != nil {
		return err
	}

	prompts.PrintWarnings(result.Warnings)
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Source", Value: sourceName},
		{Label: "Language", Value: b.Name()},
		{Label: "Output", Value: outFile},
	}, "Translation complete")

	return nil
}

// readInput returns the document bytes and a base name for the banner and
// output file. Stdin input is named "stdin".
func readInput(input string) ([]byte, string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(input) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(input), nil
}

// resolveOptions layers the generation options: transpile.yaml (when present
// in the working directory), then any flag the user set explicitly.
func resolveOptions(cmd *cobra.Command, opts *translateOptions, sourceName string) (backend.Options, error) {
	var genOpts backend.Options

	if cfg, err := config.Load(config.FileName); err == nil {
		if err := cfg.Validate(); err != nil {
			return genOpts, fmt.Errorf("%s: %w", config.FileName, err)
		}
		genOpts = cfg.Options(opts.language)
		log.Debug().Str("file", config.FileName).Msg("applied project configuration")
	} else if !os.IsNotExist(err) {
		return genOpts, fmt.Errorf("%s: %w", config.FileName, err)
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		genOpts.Indent = opts.indent
	}
	if flags.Changed("comments") {
		genOpts.AddComments = opts.comments
	}
	if flags.Changed("strict-types") {
		genOpts.StrictTypes = opts.strictTypes
	}
	if flags.Changed("zero-copy") {
		genOpts.UseZeroCopy = opts.zeroCopy
	}
	if flags.Changed("error-handling") {
		genOpts.ErrorHandling = opts.errorHandling
	}
	if flags.Changed("package-name") {
		genOpts.PackageName = opts.packageName
	}
	if flags.Changed("edition") {
		genOpts.Edition = opts.edition
	}
	if flags.Changed("no-std") {
		genOpts.NoStd = opts.noStd
	}
	genOpts.SourceName = sourceName

	return genOpts, nil
}
