// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

// Package derive turns a type's restriction facets into a compact format
// code such as X(35), XN(10), N(5,2) or boolean.
package derive

import (
	"regexp"
	"strconv"
)

// The estimator understands a restricted pattern grammar only: literal and
// escaped characters, bracket character classes, non-nested parenthesized
// groups, and {m} / {m,n} quantifiers. Alternation and backreferences are
// outside the subset and are refused rather than mis-estimated.
var (
	groupRe   = regexp.MustCompile(`\(([^()]+)\)\{(\d+)(?:,(\d+))?\}`)
	classRe   = regexp.MustCompile(`\[([^\]]+)\](?:\{(\d+)(?:,(\d+))?\})?`)
	literalRe = regexp.MustCompile(`(\\?.)(?:\{(\d+)(?:,(\d+))?\})?`)
	backrefRe = regexp.MustCompile(`\\[1-9]`)
)

// EstimateMaxLength estimates the maximum number of characters a value
// matching pattern can have. It reduces the pattern in three passes:
// quantified groups, bracket classes, then remaining literal or escaped
// characters, each contributing its quantifier's upper bound (lower bound
// when no upper is given, 1 when unquantified). The second result is false
// when nothing measurable was found or the pattern uses constructs outside
// the supported grammar subset; callers must treat that as "unknown",
// never as zero length.
func EstimateMaxLength(pattern string) (int, bool) {
	if pattern == "" || !supportedPattern(pattern) {
		return 0, false
	}

	total := 0
	p := pattern

	// Quantified groups ( ... ){m} or ( ... ){m,n}. Groups are assumed not
	// to cross-nest, so repeatedly taking the first match handles them
	// innermost-first.
	for {
		m := groupRe.FindStringSubmatchIndex(p)
		if m == nil {
			break
		}
		inner := p[m[2]:m[3]]
		innerLen, _ := EstimateMaxLength(inner)
		total += innerLen * quantifierBound(p, m, 1)
		p = p[:m[0]] + p[m[1]:]
	}

	// Bracket character classes with an optional quantifier.
	for {
		m := classRe.FindStringSubmatchIndex(p)
		if m == nil {
			break
		}
		total += quantifierBound(p, m, 1)
		p = p[:m[0]] + p[m[1]:]
	}

	// Whatever remains is literal or escaped single characters, each with
	// its own optional quantifier.
	for _, m := range literalRe.FindAllStringSubmatchIndex(p, -1) {
		total += quantifierBound(p, m, 1)
	}

	if total == 0 {
		return 0, false
	}
	return total, true
}

// quantifierBound reads the {m} / {m,n} quantifier captured as submatch
// groups 2 and 3, preferring the upper bound. def is returned when no
// quantifier was present.
func quantifierBound(s string, m []int, def int) int {
	if m[6] >= 0 {
		n, _ := strconv.Atoi(s[m[6]:m[7]])
		return n
	}
	if m[4] >= 0 {
		n, _ := strconv.Atoi(s[m[4]:m[5]])
		return n
	}
	return def
}

// supportedPattern reports whether pattern stays within the grammar subset
// the estimator understands. A '|' outside a bracket class (alternation)
// or an escaped digit (backreference) disqualifies it.
func supportedPattern(pattern string) bool {
	if backrefRe.MatchString(pattern) {
		return false
	}
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '|':
			if !inClass {
				return false
			}
		}
	}
	return true
}
