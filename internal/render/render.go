// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package render defines the output document model and the renderer
// registry.
package render

import (
	"fmt"
	"sort"

	"github.com/martikudelova/XSDscrape/internal/hierarchy"
)

// Document is the complete input passed to a renderer.
type Document struct {
	SchemaFile string                  // base name of the source schema file
	MaxDepth   int                     // deepest path length across all rows
	Rows       []hierarchy.Record      // ordered leaf records
	Types      []hierarchy.TypeSummary // distinct types, sorted
}

// Renderer defines the interface all output renderers must implement.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "xlsx", "markdown")
	Name() string

	// Render converts an extraction document to the target format
	Render(doc *Document) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".xlsx")
	FileExtension() string
}

// Registry holds the available renderers keyed by name.
type Registry map[string]Renderer

// Get retrieves a renderer by name.
func (r Registry) Get(name string) (Renderer, error) {
	renderer, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
	return renderer, nil
}

// Available returns all registered renderer names, sorted.
func (r Registry) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HierarchyHeaders returns the header row of the hierarchy table:
// one level column per path depth followed by the fixed columns.
func (d *Document) HierarchyHeaders() []string {
	headers := make([]string, 0, d.MaxDepth+6)
	for i := 1; i <= d.MaxDepth; i++ {
		headers = append(headers, fmt.Sprintf("Level %d", i))
	}
	return append(headers, "Full Path", "Type name", "ISO Status", "Format", "Patterns", "Enumerations")
}
