// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martikudelova/XSDscrape/internal/hierarchy"
	"github.com/martikudelova/XSDscrape/internal/render"
	"github.com/martikudelova/XSDscrape/internal/xsd"
)

func TestRender_Tables(t *testing.T) {
	doc := &render.Document{
		SchemaFile: "payment.xsd",
		MaxDepth:   2,
		Rows: []hierarchy.Record{
			{
				Path:      []string{"Document", "MsgId"},
				ISOStatus: "M",
				TypeName:  "Max35Text",
				Format:    "X(35)",
			},
		},
		Types: []hierarchy.TypeSummary{
			{Name: "Max35Text", Format: "X(35)", Facets: xsd.Facets{MaxLength: "35"}},
		},
	}

	data, err := (&Renderer{}).Render(doc)
	require.NoError(t, err)
	result := string(data)

	assert.Contains(t, result, "# payment.xsd")
	assert.Contains(t, result, "| Level 1 | Level 2 | Full Path | Type name | ISO Status | Format | Patterns | Enumerations |")
	assert.Contains(t, result, "| Document | MsgId | Document/MsgId | Max35Text | M | X(35) |")
	assert.Contains(t, result, "| Max35Text | X(35) |")
}

func TestRender_EscapesPipesInPatterns(t *testing.T) {
	doc := &render.Document{
		SchemaFile: "codes.xsd",
		MaxDepth:   1,
		Rows: []hierarchy.Record{
			{Path: []string{"Code"}, ISOStatus: "M", TypeName: "CodeText", Pattern: "[A|B]"},
		},
		Types: []hierarchy.TypeSummary{
			{Name: "CodeText", Facets: xsd.Facets{Pattern: "[A|B]"}},
		},
	}

	data, err := (&Renderer{}).Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `[A\|B]`)
}
