// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package xsd

import "encoding/xml"

// anyNamespace is the wildcard namespace marker on xs:any particles.
// Complex types carrying it are treated as opaque <ANY> leaves.
const anyNamespace = "##any"

// schemaDoc mirrors the top level of an XML Schema document. Tags carry
// local names only so that any schema namespace prefix is accepted.
type schemaDoc struct {
	XMLName      xml.Name          `xml:"schema"`
	Elements     []elementNode     `xml:"element"`
	ComplexTypes []complexTypeNode `xml:"complexType"`
	SimpleTypes  []simpleTypeNode  `xml:"simpleType"`
}

type elementNode struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`
}

type complexTypeNode struct {
	Name           string              `xml:"name,attr"`
	SimpleContent  *simpleContentNode  `xml:"simpleContent"`
	ComplexContent *complexContentNode `xml:"complexContent"`
	Sequences      []containerNode     `xml:"sequence"`
	Choices        []containerNode     `xml:"choice"`
	Any            []anyNode           `xml:"any"`
}

// rootContainers returns the type's top-level sequence and choice groups,
// including those wrapped in a complexContent extension.
func (ct *complexTypeNode) rootContainers() (seqs, choices []containerNode) {
	seqs = ct.Sequences
	choices = ct.Choices
	if ct.ComplexContent != nil && ct.ComplexContent.Extension != nil {
		ext := ct.ComplexContent.Extension
		seqs = append(append([]containerNode(nil), seqs...), ext.Sequences...)
		choices = append(append([]containerNode(nil), choices...), ext.Choices...)
	}
	return seqs, choices
}

type complexContentNode struct {
	Extension *contentExtensionNode `xml:"extension"`
}

type contentExtensionNode struct {
	Base      string          `xml:"base,attr"`
	Sequences []containerNode `xml:"sequence"`
	Choices   []containerNode `xml:"choice"`
}

// containerNode is a sequence or choice model group. Groups nest, so a
// container can hold further containers alongside its element particles.
type containerNode struct {
	Elements  []elementNode   `xml:"element"`
	Sequences []containerNode `xml:"sequence"`
	Choices   []containerNode `xml:"choice"`
	Any       []anyNode       `xml:"any"`
}

type anyNode struct {
	Namespace string `xml:"namespace,attr"`
}

type simpleContentNode struct {
	Extension *extensionNode `xml:"extension"`
}

type extensionNode struct {
	Base string `xml:"base,attr"`
}

type simpleTypeNode struct {
	Name        string           `xml:"name,attr"`
	Restriction *restrictionNode `xml:"restriction"`
}

type restrictionNode struct {
	Base           string      `xml:"base,attr"`
	MinLength      *facetNode  `xml:"minLength"`
	MaxLength      *facetNode  `xml:"maxLength"`
	TotalDigits    *facetNode  `xml:"totalDigits"`
	FractionDigits *facetNode  `xml:"fractionDigits"`
	Pattern        *facetNode  `xml:"pattern"`
	Enumerations   []facetNode `xml:"enumeration"`
}

type facetNode struct {
	Value string `xml:"value,attr"`
}
