// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/martikudelova/XSDscrape/internal/render"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(renderers render.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xsdscrape",
		Short: "Extract a leaf-field catalog from an XML Schema",
		Long: `xsdscrape reads an XML Schema (.xsd) and produces a flat catalog of its
terminal data fields: the positional hierarchy of each field, its M/O/C
obligation status, and a compact format code (X(35), XN(10), N(5,2),
boolean, <ANY>) derived from the type's restriction facets.`,
	}

	rootCmd.AddCommand(newExtractCmd(renderers))
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
