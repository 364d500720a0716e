// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/spf13/cobra"
)

func registerLanguagesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List available target languages",
		Example: `  # List registered backends
  transpile languages`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range backend.Available() {
				b, err := backend.Get(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t(%s)\n", name, b.FileExtension())
			}
			return nil
		},
	}

	parent.AddCommand(cmd)
}
