// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martikudelova/XSDscrape/internal/config"
	"github.com/martikudelova/XSDscrape/internal/hierarchy"
	"github.com/martikudelova/XSDscrape/internal/prompts"
	"github.com/martikudelova/XSDscrape/internal/render"
	"github.com/martikudelova/XSDscrape/internal/xsd"
)

const defaultFormat = "xlsx"

type extractOptions struct {
	format string
	output string
}

func newExtractCmd(renderers render.Registry) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [FILE]",
		Short: "Extract the leaf-field catalog from a schema file",
		Long: fmt.Sprintf(`Extract every terminal field of an XSD schema into a catalog document.

Available formats: %s`, strings.Join(renderers.Available(), ", ")),
		Example: `  # Interactive mode
  xsdscrape extract

  # Extract a schema to an Excel workbook next to it
  xsdscrape extract pain.001.001.09.xsd

  # Extract to markdown in a custom output directory
  xsdscrape extract pain.001.001.09.xsd --format markdown -o docs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return runExtract(renderers, opts, file)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(renderers.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: alongside the schema)")

	return cmd
}

func runExtract(renderers render.Registry, opts *extractOptions, file string) error {
	applyConfigDefaults(opts)

	// Prompt for anything still missing
	if err := prompts.RunExtractForm(&file, &opts.format, renderers.Available()); err != nil {
		return err
	}
	if opts.format == "" {
		opts.format = defaultFormat
	}

	renderer, err := renderers.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(renderers.Available(), ", "))
	}

	result, schemaFile, err := extractSchema(file)
	if err != nil {
		return err
	}

	doc := &render.Document{
		SchemaFile: filepath.Base(schemaFile),
		MaxDepth:   result.MaxDepth,
		Rows:       result.Rows,
		Types:      result.Types,
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", opts.format, err)
	}

	outDir := opts.output
	if outDir == "" {
		outDir = filepath.Dir(schemaFile)
	} else if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(schemaFile), filepath.Ext(schemaFile))
	outPath := filepath.Join(outDir, base+renderer.FileExtension())
	if err := os.WriteFile(outPath, data, 0o644); err != nil { //nolint:gosec // documentation output
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema", Value: filepath.Base(schemaFile)},
		{Label: "Fields", Value: strconv.Itoa(len(result.Rows))},
		{Label: "Types", Value: strconv.Itoa(len(result.Types))},
		{Label: "Output", Value: outPath},
	}, "Extraction complete")

	return nil
}

// extractSchema loads the schema file and runs the full catalog-and-
// traversal pass. The returned path has the .xsd suffix applied.
func extractSchema(file string) (*hierarchy.Result, string, error) {
	file = prompts.NormalizeSchemaPath(file)

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, "", err
	}

	loader := xsd.NewLoader(os.DirFS(filepath.Dir(abs)))
	schema, err := loader.LoadFile(filepath.Base(abs))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load schema %s: %w", file, err)
	}

	result, err := hierarchy.Extract(schema)
	if err != nil {
		return nil, "", err
	}
	return result, abs, nil
}

// applyConfigDefaults fills unset options from xsdscrape.yaml when one is
// present in the working directory.
func applyConfigDefaults(opts *extractOptions) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil || cfg.Validate() != nil {
		return
	}
	if opts.format == "" {
		opts.format = cfg.Format
	}
	if opts.output == "" {
		opts.output = cfg.Output
	}
}
