// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/testutil"
)

var update = testutil.UpdateFlag()

func init() {
	testutil.RegisterOnce(All())
}

func TestGolden(t *testing.T) {
	testutil.Golden(t, "testdata", *update, testutil.Expand)
}

func TestMetadata(t *testing.T) {
	all := All()
	require.Len(t, all, len(kinds))
	for _, s := range all {
		md := s.Metadata()
		assert.Equal(t, Family, md.Family, md.Name)
		assert.NotEmpty(t, md.Description, md.Name)
	}
	assert.Equal(t, []string{"Clone"}, NewSynthesizer(attr.Copy).Metadata().Requires)
	assert.Equal(t, "::core::ops::DerefMut", NewSynthesizer(attr.DerefMut).Metadata().Trait)
}

func TestNewSynthesizerRejectsOtherTraits(t *testing.T) {
	assert.Panics(t, func() { NewSynthesizer(attr.Hash) })
}

func expand(t *testing.T, doc string) (string, string) {
	t.Helper()
	got, err := testutil.Expand([]byte(doc), nil)
	require.NoError(t, err)
	return string(got["out.rs"]), string(got["diagnostics.txt"])
}

func TestDerefEnum(t *testing.T) {
	_, diags := expand(t, `items:
  - kind: enum
    name: E
    attrs:
      - text: "#[derive_ex(Deref)]"
        span: {line: 3, column: 1}
    variants:
      - name: A
`)
	assert.Equal(t, "3:13: derive `Deref` for enum is not supported\n", diags)
}

func TestDefaultWithoutVariant(t *testing.T) {
	_, diags := expand(t, `items:
  - kind: enum
    name: E
    attrs:
      - text: "#[derive_ex(Default)]"
        span: {line: 2, column: 1}
    variants:
      - name: A
      - name: B
`)
	assert.Equal(t, "2:13: variant with `#[default(...)]` does not exist.\n", diags)
}

func TestDefaultMultipleVariantsWithoutSpan(t *testing.T) {
	_, diags := expand(t, `items:
  - kind: enum
    name: E
    attrs:
      - text: "#[derive_ex(Default)]"
        span: {line: 3, column: 1}
    variants:
      - name: A
        attrs: ["#[default]"]
      - name: B
        attrs: ["#[default]"]
`)
	assert.Equal(t, "3:13: there are multiple variants with `#[default(...)]` (A, B)\n", diags)
}

func TestEmptyEnum(t *testing.T) {
	out, diags := expand(t, `items:
  - kind: enum
    name: Never
    attrs:
      - "#[derive_ex(Clone, Debug)]"
`)
	assert.Empty(t, diags)
	assert.Contains(t, out, "fn clone(&self) -> Self {\n        match *self {}\n    }")
	assert.Contains(t, out, "-> ::core::fmt::Result {\n        match *self {}\n    }")
}

func TestTypeDefault(t *testing.T) {
	out, diags := expand(t, `items:
  - kind: struct
    name: X
    attrs:
      - "#[derive_ex(Default)]"
      - "#[default(X::new())]"
    fields:
      list:
        - name: a
          type: u8
`)
	assert.Empty(t, diags)
	assert.Contains(t, out, "fn default() -> Self {\n        X::new()\n    }")
}
