// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package hierarchy

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martikudelova/XSDscrape/internal/xsd"
)

func loadResult(t *testing.T) *Result {
	t.Helper()
	loader := xsd.NewLoader(os.DirFS("testdata"))
	schema, err := loader.LoadFile("payment.xsd")
	require.NoError(t, err)

	result, err := Extract(schema)
	require.NoError(t, err)
	return result
}

func TestExtract_RowOrderAndPaths(t *testing.T) {
	result := loadResult(t)

	var names []string
	for _, r := range result.Rows {
		names = append(names, r.Path[len(r.Path)-1])
	}
	assert.Equal(t, []string{
		"MsgId", "CreDtTm", "NbOfTxs", "CtrlSum", "Cd", "Prtry",
		"PmtInfId", "BtchBookg", "PhneNb", "IBAN", "Ccy", "Envlp",
	}, names)

	assert.Equal(t, []string{"Document", "GrpHdr", "MsgId"}, result.Rows[0].Path)
	assert.Equal(t, 4, result.MaxDepth)
}

func TestExtract_OccurrenceSuffixOnRepeatingContainers(t *testing.T) {
	result := loadResult(t)

	// PmtInf repeats, so its path segment carries the occurrence annotation
	pmtInfID := result.Rows[6]
	assert.Equal(t, []string{"Document", "PmtInf[1...∞]", "PmtInfId"}, pmtInfID.Path)

	// single-occurrence containers stay bare
	assert.Equal(t, []string{"Document", "GrpHdr", "MsgId"}, result.Rows[0].Path)
}

func TestExtract_ISOStatus(t *testing.T) {
	result := loadResult(t)

	byName := make(map[string]Record)
	for _, r := range result.Rows {
		byName[r.Path[len(r.Path)-1]] = r
	}

	assert.Equal(t, "M", byName["MsgId"].ISOStatus)
	assert.Equal(t, "O", byName["CtrlSum"].ISOStatus, "own minOccurs=0")
	assert.Equal(t, "C", byName["Cd"].ISOStatus, "direct choice member")
	assert.Equal(t, "C", byName["Prtry"].ISOStatus, "direct choice member")
	assert.Equal(t, "O", byName["BtchBookg"].ISOStatus, "own minOccurs=0 under mandatory parent")
	assert.Equal(t, "M", byName["IBAN"].ISOStatus)
	assert.Equal(t, "O", byName["Ccy"].ISOStatus)
	assert.Equal(t, "C", byName["Envlp"].ISOStatus, "mandatory child of an optional ancestor")
}

func TestExtract_Formats(t *testing.T) {
	result := loadResult(t)

	byName := make(map[string]Record)
	for _, r := range result.Rows {
		byName[r.Path[len(r.Path)-1]] = r
	}

	assert.Equal(t, "X(35)", byName["MsgId"].Format)
	assert.Equal(t, "ISODateTime", byName["CreDtTm"].Format)
	assert.Equal(t, "XN(15)", byName["NbOfTxs"].Format)
	assert.Equal(t, "N(18,17)", byName["CtrlSum"].Format)
	assert.Equal(t, "X(4)", byName["Cd"].Format)
	assert.Equal(t, "X(128)", byName["Prtry"].Format)
	assert.Equal(t, "X(35)", byName["PhneNb"].Format)
	assert.Equal(t, "X(34)", byName["IBAN"].Format)
	assert.Equal(t, "X(3)", byName["Ccy"].Format)
}

func TestExtract_SimpleContentAliasResolvesBaseFacets(t *testing.T) {
	result := loadResult(t)

	for _, r := range result.Rows {
		if r.Path[len(r.Path)-1] == "BtchBookg" {
			assert.Equal(t, "BatchBookingIndicator", r.TypeName)
			assert.Equal(t, "boolean", r.Format)
			return
		}
	}
	t.Fatal("BtchBookg row not found")
}

func TestExtract_AnyTypeLeaf(t *testing.T) {
	result := loadResult(t)

	envlp := result.Rows[len(result.Rows)-1]
	assert.Equal(t, "Envlp", envlp.Path[len(envlp.Path)-1])
	assert.Equal(t, AnyFormat, envlp.Format)
	assert.Empty(t, envlp.Pattern)
	assert.Empty(t, envlp.Enumeration)
}

func TestExtract_RecordFacets(t *testing.T) {
	result := loadResult(t)

	for _, r := range result.Rows {
		if r.Path[len(r.Path)-1] == "Cd" {
			assert.Equal(t, "AUTH, FDET, FSUM, ILEV", r.Enumeration)
		}
		if r.Path[len(r.Path)-1] == "NbOfTxs" {
			assert.Equal(t, "[0-9]{1,15}", r.Pattern)
		}
	}
}

func TestExtract_TypeSummary(t *testing.T) {
	result := loadResult(t)

	var names []string
	for _, ts := range result.Types {
		names = append(names, ts.Name)
	}
	assert.Equal(t, []string{
		"AuthorisationCode", "BatchBookingIndicator", "CurrencyCode",
		"DecimalNumber", "IBAN2007Identifier", "ISODateTime",
		"Max128Text", "Max15NumericText", "Max35Text", "PhoneNumber",
		"SupplementaryDataEnvelope1",
	}, names)

	byName := make(map[string]TypeSummary)
	for _, ts := range result.Types {
		byName[ts.Name] = ts
	}

	// summary derivation matches the per-record derivation
	assert.Equal(t, "boolean", byName["BatchBookingIndicator"].Format)
	assert.Equal(t, AnyFormat, byName["SupplementaryDataEnvelope1"].Format)
	assert.Equal(t, xsd.Facets{}, byName["SupplementaryDataEnvelope1"].Facets)
	assert.Equal(t, "X(35)", byName["Max35Text"].Format)
	assert.Equal(t, "35", byName["Max35Text"].Facets.MaxLength)
}

func TestExtract_Deterministic(t *testing.T) {
	first := loadResult(t)
	second := loadResult(t)
	assert.Equal(t, first, second)
}

func TestExtract_NoRoot(t *testing.T) {
	schema, err := xsd.ParseSchema([]byte(`<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Code" type="CodeText"/>
  <xs:simpleType name="CodeText">
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
</xs:schema>`))
	require.NoError(t, err)

	_, err = Extract(schema)
	assert.ErrorIs(t, err, xsd.ErrNoRoot)
}
