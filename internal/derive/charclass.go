// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package derive

import "regexp"

// Class is the coarse character classification of a pattern's literal
// content.
type Class int

const (
	// ClassNone means the pattern carried no classifiable content.
	ClassNone Class = iota
	// ClassDigits means digits only.
	ClassDigits
	// ClassLetters means letters only.
	ClassLetters
	// ClassAlnum means both letters and digits.
	ClassAlnum
	// ClassText means fixed characters outside the letter/digit range
	// remain, such as separators.
	ClassText
)

var (
	stripClassRe = regexp.MustCompile(`\[[^\]]+\]`)
	stripGroupRe = regexp.MustCompile(`\([^)]+\)`)
	stripQuantRe = regexp.MustCompile(`\{\d+(?:,\d+)?\}`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	letterRe     = regexp.MustCompile(`[A-Za-z]`)
	otherRe      = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PatternClass classifies a pattern's literal content. Bracket classes,
// groups and quantifier braces are stripped before testing for fixed
// non-alphanumeric characters, but digit and letter presence is tested on
// the original pattern; both signals are required.
func PatternClass(pattern string) Class {
	if pattern == "" {
		return ClassNone
	}

	cleaned := stripClassRe.ReplaceAllString(pattern, "")
	cleaned = stripGroupRe.ReplaceAllString(cleaned, "")
	cleaned = stripQuantRe.ReplaceAllString(cleaned, "")

	hasDigit := digitRe.MatchString(pattern)
	hasLetter := letterRe.MatchString(pattern)

	switch {
	case otherRe.MatchString(cleaned):
		return ClassText
	case hasDigit && !hasLetter:
		return ClassDigits
	case hasDigit && hasLetter:
		return ClassAlnum
	case hasLetter:
		return ClassLetters
	default:
		return ClassNone
	}
}
