// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSchemaPath(t *testing.T) {
	assert.Equal(t, "pain.001.xsd", NormalizeSchemaPath("pain.001"))
	assert.Equal(t, "pain.001.xsd", NormalizeSchemaPath("pain.001.xsd"))
	assert.Equal(t, "PAIN.XSD", NormalizeSchemaPath("PAIN.XSD"))
}

func TestSchemaFileValidator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.xsd")
	require.NoError(t, os.WriteFile(path, []byte("<schema/>"), 0o600))

	assert.NoError(t, schemaFileValidator(path))
	// the .xsd suffix is applied before the existence check
	assert.NoError(t, schemaFileValidator(filepath.Join(dir, "schema")))

	assert.Error(t, schemaFileValidator(""))
	assert.Error(t, schemaFileValidator(filepath.Join(dir, "missing")))
}
