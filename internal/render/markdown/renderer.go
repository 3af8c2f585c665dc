// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package markdown renders an extraction document as markdown tables.
package markdown

import (
	"strings"

	"github.com/martikudelova/XSDscrape/internal/render"
)

// Renderer renders extraction documents as markdown documentation.
type Renderer struct{}

// Name returns the renderer's identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (r *Renderer) FileExtension() string {
	return ".md"
}

// Render emits the hierarchy table followed by the distinct-type table.
// Unlike the xlsx renderer there are no lookup formulas, so the Full Path
// and Format columns are written out directly.
func (r *Renderer) Render(doc *render.Document) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# " + doc.SchemaFile + "\n\n")

	sb.WriteString("## Hierarchy\n\n")
	writeTableRow(&sb, doc.HierarchyHeaders())
	writeTableSeparator(&sb, doc.MaxDepth+6)
	for _, row := range doc.Rows {
		cells := make([]string, doc.MaxDepth)
		copy(cells, row.Path)
		cells = append(cells,
			strings.Join(row.Path, "/"),
			row.TypeName,
			row.ISOStatus,
			row.Format,
			escapePipes(row.Pattern),
			escapePipes(row.Enumeration),
		)
		writeTableRow(&sb, cells)
	}

	sb.WriteString("\n## Types\n\n")
	writeTableRow(&sb, []string{"type", "format", "minLength", "maxLength", "totalDigits", "fractionDigits", "pattern", "enumeration"})
	writeTableSeparator(&sb, 8)
	for _, t := range doc.Types {
		writeTableRow(&sb, []string{
			t.Name,
			t.Format,
			t.Facets.MinLength,
			t.Facets.MaxLength,
			t.Facets.TotalDigits,
			t.Facets.FractionDigits,
			escapePipes(t.Facets.Pattern),
			escapePipes(strings.Join(t.Facets.Enumeration, ", ")),
		})
	}

	return []byte(sb.String()), nil
}

func writeTableRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func writeTableSeparator(sb *strings.Builder, n int) {
	sb.WriteString(strings.Repeat("| --- ", n) + "|\n")
}

// escapePipes keeps regex patterns and enumerations from breaking the
// table layout.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
