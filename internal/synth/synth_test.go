// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

func newContext(t *testing.T, doc string) *Context {
	t.Helper()
	f, err := model.Parse([]byte(doc), model.FormatYAML)
	require.NoError(t, err)
	require.Len(t, f.Items, 1)
	w, err := walk.New(f.Items[0])
	require.NoError(t, err)
	es := w.Requests.Entries()
	require.NotEmpty(t, es)
	return New(w, es[0])
}

func TestNew(t *testing.T) {
	c := newContext(t, `
items:
  - kind: struct
    name: X
    generics:
      params:
        - kind: lifetime
          name: "'a"
        - name: T
          bounds: Copy
          default: u8
        - kind: const
          name: N
          type: usize
    attrs: ["#[derive_ex(Clone)]"]
    fields:
      list:
        - type: "&'a [T; N]"
`)
	assert.Equal(t, attr.Clone, c.Kind)
	assert.Equal(t, "X<'a, T, N>", c.SelfType)
	assert.Equal(t, []string{"'a", "T: Copy", "const N: usize"}, c.Params)
	assert.Equal(t, "X", c.Name())
	assert.False(t, c.IsEnum())

	im := c.Impl("::core::clone::Clone", []string{"T: Clone"})
	assert.Equal(t, []string{Derived}, im.Attrs)
	assert.Equal(t, c.SelfType, im.Self)
	assert.Equal(t, c.Params, im.Params)
	assert.Equal(t, []string{"T: Clone"}, im.Where)
}

func TestShape(t *testing.T) {
	c := newContext(t, `
items:
  - kind: enum
    name: E
    attrs: ["#[derive_ex(Debug)]"]
    variants:
      - name: A
        fields:
          list:
            - name: a
              type: u8
            - name: r#b
              type: u8
      - name: B
        fields:
          list:
            - type: u8
      - name: C
`)
	require.Len(t, c.Item.Variants, 3)
	a := VariantShape("Self", c.Item.Variants[0])
	assert.Equal(t, "Self::A { a: _self_a, r#b: _self_b }", a.Bind("_self"))
	assert.Equal(t, "Self::A { .. }", a.Wildcard())

	b := VariantShape("E", c.Item.Variants[1])
	assert.Equal(t, "E::B(_other_0)", b.Bind("_other"))
	assert.Equal(t, "E::B { .. }", b.Wildcard())
	assert.Equal(t, "E::B(1)", b.Ctor(func(*walk.Field) string { return "1" }))

	u := VariantShape("Self", c.Item.Variants[2])
	assert.Equal(t, "Self::C", u.Bind("_self"))
	assert.Equal(t, "Self::C", u.Wildcard())
}

func TestStructShape(t *testing.T) {
	c := newContext(t, `
items:
  - kind: struct
    name: P
    attrs: ["#[derive_ex(Default)]"]
    fields:
      list:
        - name: x
          type: i32
`)
	s := c.StructShape()
	assert.Equal(t, "P { x: 0 }", s.Ctor(func(*walk.Field) string { return "0" }))
	f := c.Item.Fields[0]
	assert.Equal(t, "(self.x)", Access("self", f))
	assert.Equal(t, "(*_self_x)", Deref(f.Binding("_self")))
}
