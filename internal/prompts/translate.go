// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunTranslateForm prompts for any translate inputs not supplied via flags.
// Fields that already have values are skipped; promptOutput controls whether
// the output directory is asked for at all.
func RunTranslateForm(input, language, output *string, promptOutput bool, languages []string) error {
	var fields []huh.Field

	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("Input AST file").
			Placeholder("e.g., cipher.ast.json").
			Value(input).
			Validate(fileValidator("input file")))
	}

	if *language == "" {
		fields = append(fields, languageSelect(language, languages))
	}

	if promptOutput && *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("e.g., generated").
			Value(output).
			Validate(requiredValidator("output directory")))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}

// languageSelect returns a select field for choosing the target language.
func languageSelect(value *string, languages []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(languages))
	for i, l := range languages {
		options[i] = huh.NewOption(l, l)
	}
	return huh.NewSelect[string]().
		Title("Target language").
		Options(options...).
		Value(value)
}
