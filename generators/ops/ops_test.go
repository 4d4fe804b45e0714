// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ops

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

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 22)
	for _, s := range all {
		md := s.Metadata()
		assert.Equal(t, Family, md.Family, md.Name)
		k, ok := attr.ParseKind(md.Name)
		require.True(t, ok, md.Name)
		assert.Equal(t, !k.IsUnary(), md.FromImpl, md.Name)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want string
	}{
		{"binary owned", BinaryBound("::core::ops::Add", false, false)("T"), "T: ::core::ops::Add<T, Output = T>"},
		{"binary borrowed rhs", BinaryBound("::core::ops::Add", false, true)("T"), "for<'a> T: ::core::ops::Add<&'a T, Output = T>"},
		{"binary borrowed both", BinaryBound("::core::ops::Add", true, true)("T"), "for<'a> &'a T: ::core::ops::Add<&'a T, Output = T>"},
		{"assign", AssignBound("::core::ops::AddAssign", false)("T"), "T: ::core::ops::AddAssign<T>"},
		{"assign borrowed", AssignBound("::core::ops::AddAssign", true)("T"), "for<'a> T: ::core::ops::AddAssign<&'a T>"},
		{"unary", UnaryBound("::core::ops::Neg", false)("T"), "T: ::core::ops::Neg<Output = T>"},
		{"unary borrowed", UnaryBound("::core::ops::Neg", true)("T"), "for<'a> &'a T: ::core::ops::Neg<Output = T>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, tt.got)
		})
	}
}

func TestRefElem(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ref  bool
	}{
		{"X", "X", false},
		{"&X<T>", "X<T>", true},
		{"&'a X", "&'a X", false},
		{"&mut X", "&mut X", false},
	}
	for _, tt := range tests {
		got, ref := refElem(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ref, ref, tt.in)
	}
}

func TestSplitTrait(t *testing.T) {
	name, args, err := splitTrait("::core::ops::Add<&X, Y>")
	require.NoError(t, err)
	assert.Equal(t, "Add", name)
	require.Len(t, args, 2)
	assert.Equal(t, "&X", args[0].String())
	assert.Equal(t, "Y", args[1].String())
}

func expand(t *testing.T, doc string) string {
	t.Helper()
	got, err := testutil.Expand([]byte(doc), nil)
	require.NoError(t, err)
	return string(got["diagnostics.txt"])
}

func TestFromImplErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "negative",
			doc: `items:
  - kind: impl
    span: {line: 2, column: 3}
    attrs: ["#[derive_ex(Add)]"]
    impl:
      negative: true
      trait: Add
      self: X
`,
			want: "2:3: cannot use with negative trait\n",
		},
		{
			name: "unsupported trait",
			doc: `items:
  - kind: impl
    span: {line: 2, column: 3}
    attrs: ["#[derive_ex(Add)]"]
    impl:
      trait: Clone
      self: X
`,
			want: "2:3: `Clone` is not supported for `#[derive_ex]`\n",
		},
		{
			name: "missing output",
			doc: `items:
  - kind: impl
    span: {line: 2, column: 3}
    attrs: ["#[derive_ex(Add)]"]
    impl:
      trait: Add<&X>
      self: X
`,
			want: "2:3: cannot find associate type `Output`\n",
		},
		{
			name: "assign from assign",
			doc: `items:
  - kind: impl
    attrs:
      - text: "#[derive_ex(AddAssign)]"
        span: {line: 4, column: 1}
    impl:
      trait: AddAssign
      self: X
`,
			want: "4:13: `#[derive_ex(AddAssign)]` can be used only with `impl Add for T`\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expand(t, tt.doc))
		})
	}
}
