// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package xlsx renders an extraction document as a two-sheet Excel
// workbook: the hierarchy table with full-path and format lookup formulas,
// and the distinct-type summary the lookups resolve against.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/martikudelova/XSDscrape/internal/render"
)

const (
	hierarchySheet = "Hierarchy"
	typesSheet     = "Types"

	// data rows start below the title and header rows
	startRow = 3
)

// Renderer renders extraction documents as Excel workbooks.
type Renderer struct{}

// Name returns the renderer's identifier.
func (r *Renderer) Name() string {
	return "xlsx"
}

// FileExtension returns the file extension for Excel workbooks.
func (r *Renderer) FileExtension() string {
	return ".xlsx"
}

// Render builds the workbook. The Format column on the hierarchy sheet is
// a VLOOKUP into the Types sheet so the two stay consistent when edited,
// and the Full Path column concatenates the level columns.
func (r *Renderer) Render(doc *render.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", hierarchySheet); err != nil {
		return nil, err
	}
	if err := r.writeHierarchy(f, doc); err != nil {
		return nil, err
	}
	if err := r.writeTypes(f, doc); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeHierarchy(f *excelize.File, doc *render.Document) error {
	if err := f.SetCellValue(hierarchySheet, "A1", doc.SchemaFile); err != nil {
		return err
	}

	headers := doc.HierarchyHeaders()
	if err := setRow(f, hierarchySheet, 2, toAnySlice(headers)); err != nil {
		return err
	}

	fullPathCol := doc.MaxDepth + 1
	typeCol := doc.MaxDepth + 2
	formatCol := doc.MaxDepth + 4

	for i, row := range doc.Rows {
		cells := make([]any, doc.MaxDepth, len(headers))
		for j, level := range row.Path {
			cells[j] = level
		}
		// Full Path and Format stay empty; formulas fill them below.
		cells = append(cells, "", row.TypeName, row.ISOStatus, "", row.Pattern, row.Enumeration)
		if err := setRow(f, hierarchySheet, startRow+i, cells); err != nil {
			return err
		}

		excelRow := startRow + i
		if err := setFormula(f, hierarchySheet, fullPathCol, excelRow, fullPathFormula(doc.MaxDepth, excelRow)); err != nil {
			return err
		}
		if err := setFormula(f, hierarchySheet, formatCol, excelRow, formatFormula(typeCol, excelRow)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeTypes(f *excelize.File, doc *render.Document) error {
	if _, err := f.NewSheet(typesSheet); err != nil {
		return err
	}

	headers := []any{"type", "format", "minLength", "maxLength", "totalDigits", "fractionDigits", "pattern", "enumeration"}
	if err := setRow(f, typesSheet, 1, headers); err != nil {
		return err
	}

	for i, t := range doc.Types {
		cells := []any{
			t.Name,
			t.Format,
			t.Facets.MinLength,
			t.Facets.MaxLength,
			t.Facets.TotalDigits,
			t.Facets.FractionDigits,
			t.Facets.Pattern,
			strings.Join(t.Facets.Enumeration, ", "),
		}
		if err := setRow(f, typesSheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

// fullPathFormula concatenates the level columns of one row with "/"
// separators, skipping empty cells.
func fullPathFormula(maxDepth, row int) string {
	parts := make([]string, 0, maxDepth)
	for col := 1; col <= maxDepth; col++ {
		name, _ := excelize.ColumnNumberToName(col)
		cell := fmt.Sprintf("%s%d", name, row)
		if col == 1 {
			parts = append(parts, fmt.Sprintf(`IF(%s="","",%s)`, cell, cell))
		} else {
			parts = append(parts, fmt.Sprintf(`IF(%s="","","/" & %s)`, cell, cell))
		}
	}
	return strings.Join(parts, " & ")
}

// formatFormula looks the row's type name up on the Types sheet, turning
// both a missing entry and an empty derived format into ERROR.
func formatFormula(typeCol, row int) string {
	name, _ := excelize.ColumnNumberToName(typeCol)
	cell := fmt.Sprintf("%s%d", name, row)
	lookup := fmt.Sprintf(`VLOOKUP(%s,%s!$A:$H,2,FALSE)`, cell, typesSheet)
	return fmt.Sprintf(`IFERROR(IF(%s="","ERROR",%s),"ERROR")`, lookup, lookup)
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func setFormula(f *excelize.File, sheet string, col, row int, formula string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellFormula(sheet, cell, formula)
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
