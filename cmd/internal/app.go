// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/martikudelova/XSDscrape/internal/commands"
	"github.com/martikudelova/XSDscrape/internal/render"
	"github.com/martikudelova/XSDscrape/internal/render/markdown"
	"github.com/martikudelova/XSDscrape/internal/render/xlsx"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(DefaultRenderers())
	return rootCmd.ExecuteContext(ctx)
}

// DefaultRenderers returns the registry of built-in output renderers.
func DefaultRenderers() render.Registry {
	renderers := make(render.Registry)
	renderers["xlsx"] = &xlsx.Renderer{}
	renderers["markdown"] = &markdown.Renderer{}
	return renderers
}
