// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMaxLength_CharClasses(t *testing.T) {
	n, ok := EstimateMaxLength(`[0-9]{3}-[0-9]{4}`)
	assert.True(t, ok)
	assert.Equal(t, 8, n) // 3 + 1 + 4
}

func TestEstimateMaxLength_SingleClass(t *testing.T) {
	n, ok := EstimateMaxLength(`[0-9]{10}`)
	assert.True(t, ok)
	assert.Equal(t, 10, n)
}

func TestEstimateMaxLength_QuantifiedGroup(t *testing.T) {
	n, ok := EstimateMaxLength(`(AB){2}`)
	assert.True(t, ok)
	assert.Equal(t, 4, n) // inner 2 * repeat 2
}

func TestEstimateMaxLength_RangeQuantifierUsesUpperBound(t *testing.T) {
	n, ok := EstimateMaxLength(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)
	assert.True(t, ok)
	assert.Equal(t, 34, n)
}

func TestEstimateMaxLength_EscapedLiterals(t *testing.T) {
	n, ok := EstimateMaxLength(`\+[0-9]{1,3}-[0-9()+\-]{1,30}`)
	assert.True(t, ok)
	assert.Equal(t, 35, n) // 1 + 3 + 1 + 30
}

func TestEstimateMaxLength_UnquantifiedClass(t *testing.T) {
	n, ok := EstimateMaxLength(`[A-Z]`)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestEstimateMaxLength_Empty(t *testing.T) {
	_, ok := EstimateMaxLength("")
	assert.False(t, ok)
}

func TestEstimateMaxLength_RefusesAlternation(t *testing.T) {
	_, ok := EstimateMaxLength(`yes|no`)
	assert.False(t, ok)
}

func TestEstimateMaxLength_AlternationInsideClassIsFine(t *testing.T) {
	n, ok := EstimateMaxLength(`[|;]{2}`)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestEstimateMaxLength_RefusesBackreference(t *testing.T) {
	_, ok := EstimateMaxLength(`(ab)\1`)
	assert.False(t, ok)
}

func TestPatternClass(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Class
	}{
		{"digits only", `[0-9]{10}`, ClassDigits},
		{"fixed separator makes text", `[0-9]{3}-[0-9]{4}`, ClassText},
		{"letters and digits", `[A-Z]{2}[0-9]{2}[a-zA-Z0-9]{1,30}`, ClassAlnum},
		{"quantifier digits count toward digit presence", `[A-Z]{3,3}`, ClassAlnum},
		{"letters only", `[A-Z]`, ClassLetters},
		{"empty", ``, ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatternClass(tt.pattern))
		})
	}
}
