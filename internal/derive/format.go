// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package derive

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/martikudelova/XSDscrape/internal/xsd"
)

// nameFormats maps well-known semantic type names to their format codes.
// Entries are ordered longest key first so that multi-token keys are not
// pre-empted by shorter substrings (ISODateTime before ISODate); ties keep
// declaration order.
var nameFormats = []struct {
	key    string
	format string
}{
	{"SupplementaryDataEnvelope1", "<any>"},
	{"ISOYearMonth", "ISOYearMonth"},
	{"LanguageCode", "X(2)"},
	{"ISODateTime", "ISODateTime"},
	{"SkipPayload", "<any>"},
	{"ISODate", "ISODate"},
	{"ISOTime", "ISOTime"},
}

var (
	maxTextRe    = regexp.MustCompile(`Max(\d+).*Text`)
	maxNumericRe = regexp.MustCompile(`Max(\d+).*Numeric`)
)

// Format derives a format code from a type name and its facets. It is a
// pure priority cascade; the first matching rule wins and identical inputs
// always yield identical output. An empty result means "undetermined",
// not an error.
func Format(typeName string, facets xsd.Facets) string {
	// 1. Boolean base type, case-insensitive, beats everything else.
	if base := strings.ToLower(facets.Base); base == "xs:boolean" || base == "boolean" {
		return "boolean"
	}

	// 2. Enumeration: width of the longest literal value.
	if len(facets.Enumeration) > 0 {
		longest := 0
		for _, v := range facets.Enumeration {
			if n := utf8.RuneCountInString(v); n > longest {
				longest = n
			}
		}
		return fmt.Sprintf("X(%d)", longest)
	}

	// 3. Pattern: estimated length, XN for digit-only content.
	if facets.Pattern != "" {
		est, ok := EstimateMaxLength(facets.Pattern)
		if !ok {
			return ""
		}
		if PatternClass(facets.Pattern) == ClassDigits {
			return fmt.Sprintf("XN(%d)", est)
		}
		return fmt.Sprintf("X(%d)", est)
	}

	// 4. Decimal digit counts.
	if facets.TotalDigits != "" {
		frac := facets.FractionDigits
		if frac == "" {
			frac = "0"
		}
		return fmt.Sprintf("N(%s,%s)", facets.TotalDigits, frac)
	}

	// 5. Text length bound.
	if facets.MaxLength != "" {
		return fmt.Sprintf("X(%s)", facets.MaxLength)
	}

	// 6. Fall back to the type name.
	for _, nf := range nameFormats {
		if strings.Contains(typeName, nf.key) {
			return nf.format
		}
	}
	if m := maxTextRe.FindStringSubmatch(typeName); m != nil {
		return fmt.Sprintf("X(%s)", m[1])
	}
	if m := maxNumericRe.FindStringSubmatch(typeName); m != nil {
		return fmt.Sprintf("XN(%s)", m[1])
	}

	return ""
}
