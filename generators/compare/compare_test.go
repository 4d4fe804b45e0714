// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/derivex/generator"
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
	for _, s := range All() {
		md := s.Metadata()
		assert.Equal(t, Family, md.Family, md.Name)
		assert.False(t, md.FromImpl, md.Name)
		assert.NotEmpty(t, md.Description, md.Name)
	}
	assert.Equal(t, []string{"Eq", "PartialOrd"}, NewSynthesizer(attr.Ord).Metadata().Requires)
	assert.Empty(t, NewSynthesizer(attr.Hash).Metadata().Requires)
}

func TestNewSynthesizerRejectsOtherTraits(t *testing.T) {
	assert.Panics(t, func() { NewSynthesizer(attr.Clone) })
}

func TestSynthesizeRequiresItem(t *testing.T) {
	in := &generator.Input{Entry: &attr.Entry{Kind: attr.Eq}}
	_, err := NewSynthesizer(attr.Eq).Synthesize(context.Background(), in, generator.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used with impl blocks")
}

const eqInput = `items:
  - kind: struct
    name: X
    attrs:
      - "#[derive_ex(Eq)]"
    fields:
      list:
        - name: a
          type: u8
`

func TestEqChecker(t *testing.T) {
	tests := []struct {
		flags []string
		want  bool
	}{
		{nil, true},
		{[]string{OptionEqChecker + "=on"}, true},
		{[]string{OptionEqChecker + "=off"}, false},
	}
	for _, tt := range tests {
		got, err := testutil.Expand([]byte(eqInput), tt.flags)
		require.NoError(t, err)
		out := string(got["out.rs"])
		assert.Contains(t, out, "impl ::core::cmp::Eq for X {}")
		assert.Equal(t, tt.want, strings.Contains(out, "const _: () = {"), "flags %v", tt.flags)
	}
}
