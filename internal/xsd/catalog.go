// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package xsd parses XML Schema documents into a flat catalog of named
// types, their restriction facets, and their child element particles.
package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrNoRoot is returned when no top-level element declares a complex type
// with child elements. Without one there is no traversal start point.
var ErrNoRoot = errors.New("no resolvable root element")

// Facets holds the restriction facets captured from a simple type.
// Absent facets are empty strings (or a nil enumeration), never zero values.
type Facets struct {
	Base           string
	MinLength      string
	MaxLength      string
	TotalDigits    string
	FractionDigits string
	Pattern        string
	Enumeration    []string
}

// ChildElement is one element particle collected from a sequence or choice
// container inside a complex type.
type ChildElement struct {
	Name      string
	Type      string
	MinOccurs string
	MaxOccurs string
	InChoice  bool
}

// Schema is the read-only catalog built from one parsed schema document.
type Schema struct {
	simpleTypes map[string]Facets
	children    map[string][]ChildElement
	anyTypes    map[string]struct{}
	aliasBase   map[string]string
	topLevel    []elementNode
}

// ParseSchema decodes an XSD document and builds its type catalog.
func ParseSchema(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	s := &Schema{
		simpleTypes: make(map[string]Facets),
		children:    make(map[string][]ChildElement),
		anyTypes:    make(map[string]struct{}),
		aliasBase:   make(map[string]string),
		topLevel:    doc.Elements,
	}

	for _, st := range doc.SimpleTypes {
		if st.Name == "" {
			continue
		}
		s.simpleTypes[st.Name] = captureFacets(st.Restriction)
	}

	for _, ct := range doc.ComplexTypes {
		if ct.Name == "" {
			continue
		}

		// simpleContent/extension: the type is a transparent alias onto
		// its base simple type and contributes no children of its own.
		if ct.SimpleContent != nil {
			if ext := ct.SimpleContent.Extension; ext != nil && ext.Base != "" {
				s.aliasBase[ct.Name] = ext.Base
			}
			continue
		}

		// An ##any wildcard anywhere in the content model makes the type
		// an opaque leaf; children collection is skipped entirely.
		if containsAnyWildcard(&ct) {
			s.anyTypes[ct.Name] = struct{}{}
			continue
		}

		elems := collectChildren(&ct)
		if len(elems) > 0 {
			s.children[ct.Name] = elems
		}
	}

	return s, nil
}

// SimpleType returns the facets registered for a named simple type.
// An unknown name yields an empty facet set and ok=false.
func (s *Schema) SimpleType(name string) (Facets, bool) {
	f, ok := s.simpleTypes[name]
	return f, ok
}

// Children returns the child element particles of a complex type, in
// declaration order. An unknown or childless name yields nil (a leaf).
func (s *Schema) Children(name string) []ChildElement {
	return s.children[name]
}

// IsAnyType reports whether name is a complex type with an open wildcard
// content model.
func (s *Schema) IsAnyType(name string) bool {
	_, ok := s.anyTypes[name]
	return ok
}

// AliasBase returns the simple-content base of a complex type alias.
func (s *Schema) AliasBase(name string) (string, bool) {
	base, ok := s.aliasBase[name]
	return base, ok
}

// ResolveRoot scans top-level element declarations in document order and
// returns the name and type of the first whose type has registered
// children. It returns ErrNoRoot when none qualifies.
func (s *Schema) ResolveRoot() (name, typeName string, err error) {
	for _, el := range s.topLevel {
		if len(s.children[el.Type]) > 0 {
			return el.Name, el.Type, nil
		}
	}
	return "", "", ErrNoRoot
}

func captureFacets(r *restrictionNode) Facets {
	var f Facets
	if r == nil {
		return f
	}
	f.Base = r.Base
	f.MinLength = facetValue(r.MinLength)
	f.MaxLength = facetValue(r.MaxLength)
	f.TotalDigits = facetValue(r.TotalDigits)
	f.FractionDigits = facetValue(r.FractionDigits)
	f.Pattern = facetValue(r.Pattern)
	for _, e := range r.Enumerations {
		f.Enumeration = append(f.Enumeration, e.Value)
	}
	return f
}

func facetValue(n *facetNode) string {
	if n == nil {
		return ""
	}
	return n.Value
}

// collectChildren gathers element particles from every sequence and choice
// container at any depth: sequence containers first, then choice
// containers, document order within each kind. Only direct element
// children of a container are taken, tagged with whether that container
// is a choice.
func collectChildren(ct *complexTypeNode) []ChildElement {
	seqs, choices := ct.rootContainers()
	var elems []ChildElement
	for _, seq := range allContainers(seqs, choices, false) {
		elems = appendContainerElements(elems, seq, false)
	}
	for _, ch := range allContainers(seqs, choices, true) {
		elems = appendContainerElements(elems, ch, true)
	}
	return elems
}

// allContainers flattens the container tree under a complex type into a
// pre-order list of either its sequences or its choices.
func allContainers(seqs, choices []containerNode, wantChoice bool) []*containerNode {
	var out []*containerNode
	var walk func(c *containerNode, isChoice bool)
	walk = func(c *containerNode, isChoice bool) {
		if isChoice == wantChoice {
			out = append(out, c)
		}
		for i := range c.Sequences {
			walk(&c.Sequences[i], false)
		}
		for i := range c.Choices {
			walk(&c.Choices[i], true)
		}
	}
	for i := range seqs {
		walk(&seqs[i], false)
	}
	for i := range choices {
		walk(&choices[i], true)
	}
	return out
}

func appendContainerElements(elems []ChildElement, c *containerNode, isChoice bool) []ChildElement {
	for _, el := range c.Elements {
		if el.Name == "" {
			continue
		}
		elems = append(elems, ChildElement{
			Name:      el.Name,
			Type:      el.Type,
			MinOccurs: defaultOccurs(el.MinOccurs),
			MaxOccurs: defaultOccurs(el.MaxOccurs),
			InChoice:  isChoice,
		})
	}
	return elems
}

// defaultOccurs applies the schema default of 1 for absent occurrence bounds.
func defaultOccurs(v string) string {
	if v == "" {
		return "1"
	}
	return v
}

func containsAnyWildcard(ct *complexTypeNode) bool {
	if hasAnyMarker(ct.Any) {
		return true
	}
	var walk func(c *containerNode) bool
	walk = func(c *containerNode) bool {
		if hasAnyMarker(c.Any) {
			return true
		}
		for i := range c.Sequences {
			if walk(&c.Sequences[i]) {
				return true
			}
		}
		for i := range c.Choices {
			if walk(&c.Choices[i]) {
				return true
			}
		}
		return false
	}
	seqs, choices := ct.rootContainers()
	for i := range seqs {
		if walk(&seqs[i]) {
			return true
		}
	}
	for i := range choices {
		if walk(&choices[i]) {
			return true
		}
	}
	return false
}

func hasAnyMarker(nodes []anyNode) bool {
	for _, a := range nodes {
		if a.Namespace == anyNamespace {
			return true
		}
	}
	return false
}
