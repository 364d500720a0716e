// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/transpile/internal/prompts"
	"github.com/dacolabs/transpile/internal/validate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func registerValidateCmd(parent *cobra.Command) {
	var language string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a generated source file for syntax errors",
		Long: `Check a generated source file for syntax errors.

When the target language's toolchain is installed it is used as the
oracle; otherwise a structural bracket-balance check runs instead.`,
		Example: `  # Validate generated Rust
  transpile validate -l rust generated/cipher.rs

  # Validate generated Go
  transpile validate -l go generated/cipher.go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if language == "" {
				return fmt.Errorf("--language is required")
			}

			v, err := validate.New(language)
			if err != nil {
				return err
			}

			res, err := v.ValidateFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			log.Debug().Str("method", res.Method).Bool("ok", res.OK).Msg("validation finished")

			if !res.OK {
				if res.Output != "" {
					fmt.Println(res.Output)
				}
				return fmt.Errorf("%s failed validation (%s)", args[0], res.Method)
			}

			prompts.PrintResult([]prompts.ResultField{
				{Label: "File", Value: args[0]},
				{Label: "Method", Value: res.Method},
			}, "Validation passed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language of the file (rust, go)")

	parent.AddCommand(cmd)
}
