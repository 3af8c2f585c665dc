// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package hierarchy walks a schema's type graph from its root element and
// enumerates every terminal field with its path, obligation status and
// derived format code.
package hierarchy

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/martikudelova/XSDscrape/internal/derive"
	"github.com/martikudelova/XSDscrape/internal/xsd"
)

// AnyFormat is the fixed format code emitted for open-wildcard types.
const AnyFormat = "<ANY>"

// ErrNoLeaves is returned when traversal produces no terminal fields;
// there is nothing to document and no partial output is possible.
var ErrNoLeaves = errors.New("no leaf elements found")

// Record is one terminal field of the schema.
type Record struct {
	Path        []string
	ISOStatus   string
	TypeName    string
	Pattern     string
	Enumeration string
	Format      string
}

// TypeSummary maps one distinct type name appearing in the records to its
// derived format and resolved facets.
type TypeSummary struct {
	Name   string
	Format string
	Facets xsd.Facets
}

// Result is the complete output of one extraction run.
type Result struct {
	Rows     []Record
	Types    []TypeSummary
	MaxDepth int
}

// Extract resolves the schema's root element and traverses its type graph
// depth-first in declaration order, returning the ordered leaf records and
// the distinct-type summary table.
func Extract(schema *xsd.Schema) (*Result, error) {
	rootName, rootType, err := schema.ResolveRoot()
	if err != nil {
		return nil, err
	}

	rows := traverse(schema, xsd.ChildElement{
		Name:      rootName,
		Type:      rootType,
		MinOccurs: "1",
		MaxOccurs: "1",
	}, nil, false, false)

	if len(rows) == 0 {
		return nil, ErrNoLeaves
	}

	res := &Result{
		Rows:  rows,
		Types: summarize(schema, rows),
	}
	for _, r := range rows {
		if len(r.Path) > res.MaxDepth {
			res.MaxDepth = len(r.Path)
		}
	}
	return res, nil
}

// traverse visits el and its descendants, threading the accumulated path,
// inherited optionality and choice membership explicitly through the
// recursion. Only leaf nodes produce records; containers contribute path
// segments and state.
func traverse(schema *xsd.Schema, el xsd.ChildElement, path []string, parentOptionalSeen, inChoice bool) []Record {
	children := schema.Children(el.Type)

	name := el.Name
	if len(children) > 0 && multiOccurrence(el.MaxOccurs) {
		name += occurrenceSuffix(el.MinOccurs, el.MaxOccurs)
	}
	current := append(append([]string(nil), path...), name)

	var status string
	switch {
	case inChoice:
		status = "C"
	case el.MinOccurs == "0":
		status = "O"
		// descendants of an optional node become conditional
		parentOptionalSeen = true
	case parentOptionalSeen:
		status = "C"
	default:
		status = "M"
	}

	if len(children) == 0 {
		facets, format := resolveLeaf(schema, el.Type)
		return []Record{{
			Path:        current,
			ISOStatus:   status,
			TypeName:    el.Type,
			Pattern:     facets.Pattern,
			Enumeration: strings.Join(facets.Enumeration, ", "),
			Format:      format,
		}}
	}

	var rows []Record
	for _, child := range children {
		rows = append(rows, traverse(schema, child, current, parentOptionalSeen, inChoice || child.InChoice)...)
	}
	return rows
}

// resolveLeaf resolves the facets and format for a leaf type: any-types
// get the fixed <ANY> token with empty facets, simple-content aliases
// resolve through their base type, everything else uses its own facets.
func resolveLeaf(schema *xsd.Schema, typeName string) (xsd.Facets, string) {
	if schema.IsAnyType(typeName) {
		return xsd.Facets{}, AnyFormat
	}
	resolved := typeName
	if base, ok := schema.AliasBase(typeName); ok {
		resolved = base
	}
	facets, _ := schema.SimpleType(resolved)
	return facets, derive.Format(resolved, facets)
}

// summarize builds the type table: every distinct type name in the rows,
// sorted, with the same facet resolution and format derivation applied as
// for the records themselves.
func summarize(schema *xsd.Schema, rows []Record) []TypeSummary {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range rows {
		if r.TypeName == "" {
			continue
		}
		if _, ok := seen[r.TypeName]; ok {
			continue
		}
		seen[r.TypeName] = struct{}{}
		names = append(names, r.TypeName)
	}
	sort.Strings(names)

	summaries := make([]TypeSummary, 0, len(names))
	for _, name := range names {
		facets, format := resolveLeaf(schema, name)
		summaries = append(summaries, TypeSummary{Name: name, Format: format, Facets: facets})
	}
	return summaries
}

func multiOccurrence(maxOccurs string) bool {
	if maxOccurs == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(maxOccurs)
	return err == nil && n > 1
}

// occurrenceSuffix renders the [min...max] annotation, with an infinity
// symbol for unbounded.
func occurrenceSuffix(minOccurs, maxOccurs string) string {
	if maxOccurs == "unbounded" {
		maxOccurs = "∞"
	}
	return "[" + minOccurs + "..." + maxOccurs + "]"
}
