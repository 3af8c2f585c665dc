// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package prompts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// NormalizeSchemaPath appends the .xsd extension when the user left it off.
func NormalizeSchemaPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".xsd") {
		return path
	}
	return path + ".xsd"
}

func schemaFileValidator(s string) error {
	if s == "" {
		return errors.New("schema file is required")
	}
	path := NormalizeSchemaPath(s)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file %q not found", path)
	}
	return nil
}

// RunExtractForm prompts for any values of the extract command the user
// did not supply via arguments or flags.
func RunExtractForm(file *string, format *string, formats []string) error {
	var groups []*huh.Group

	if *file == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Placeholder("e.g., pain.001.001.09.xsd").
				Value(file).
				Validate(schemaFileValidator),
		))
	}

	if *format == "" {
		options := make([]huh.Option[string], len(formats))
		for i, f := range formats {
			options[i] = huh.NewOption(f, f)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(options...).
				Value(format),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
