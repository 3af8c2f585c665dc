// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type typesOptions struct {
	output string // output format: text, json, yaml
}

// typeRow is the serializable form of one type summary entry.
type typeRow struct {
	Type           string `json:"type" yaml:"type"`
	Format         string `json:"format,omitempty" yaml:"format,omitempty"`
	MinLength      string `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength      string `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	TotalDigits    string `json:"totalDigits,omitempty" yaml:"totalDigits,omitempty"`
	FractionDigits string `json:"fractionDigits,omitempty" yaml:"fractionDigits,omitempty"`
	Pattern        string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enumeration    string `json:"enumeration,omitempty" yaml:"enumeration,omitempty"`
}

func newTypesCmd() *cobra.Command {
	opts := &typesOptions{}

	cmd := &cobra.Command{
		Use:   "types FILE",
		Short: "List the distinct types used by a schema's leaf fields",
		Long:  `Print every distinct type name appearing in the schema's terminal fields together with its derived format code and restriction facets.`,
		Example: `  # Human-readable table
  xsdscrape types pain.001.001.09.xsd

  # As JSON
  xsdscrape types pain.001.001.09.xsd -o json

  # As YAML
  xsdscrape types pain.001.001.09.xsd -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runTypes(file string, opts *typesOptions) error {
	result, _, err := extractSchema(file)
	if err != nil {
		return err
	}

	rows := make([]typeRow, 0, len(result.Types))
	for _, t := range result.Types {
		rows = append(rows, typeRow{
			Type:           t.Name,
			Format:         t.Format,
			MinLength:      t.Facets.MinLength,
			MaxLength:      t.Facets.MaxLength,
			TotalDigits:    t.Facets.TotalDigits,
			FractionDigits: t.Facets.FractionDigits,
			Pattern:        t.Facets.Pattern,
			Enumeration:    strings.Join(t.Facets.Enumeration, ", "),
		})
	}

	switch opts.output {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "text":
		printTypesText(rows)
	default:
		return fmt.Errorf("unknown output format %q (text, json, yaml)", opts.output)
	}
	return nil
}

func printTypesText(rows []typeRow) {
	nameWidth := len("TYPE")
	for _, r := range rows {
		if len(r.Type) > nameWidth {
			nameWidth = len(r.Type)
		}
	}

	fmt.Printf("%-*s  %-14s  %s\n", nameWidth, "TYPE", "FORMAT", "FACETS")
	for _, r := range rows {
		fmt.Printf("%-*s  %-14s  %s\n", nameWidth, r.Type, r.Format, facetsSummary(r))
	}
}

func facetsSummary(r typeRow) string {
	var parts []string
	if r.MinLength != "" {
		parts = append(parts, "minLength="+r.MinLength)
	}
	if r.MaxLength != "" {
		parts = append(parts, "maxLength="+r.MaxLength)
	}
	if r.TotalDigits != "" {
		parts = append(parts, "totalDigits="+r.TotalDigits)
	}
	if r.FractionDigits != "" {
		parts = append(parts, "fractionDigits="+r.FractionDigits)
	}
	if r.Pattern != "" {
		parts = append(parts, "pattern="+r.Pattern)
	}
	if r.Enumeration != "" {
		parts = append(parts, "enum=["+r.Enumeration+"]")
	}
	return strings.Join(parts, " ")
}
