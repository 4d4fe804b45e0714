// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

// Shape is a constructor path with its field list: the struct itself, or
// one variant.
type Shape struct {
	Path   string
	Style  model.FieldStyle
	Fields []*walk.Field
}

// StructShape returns the shape of a struct, built through its name
// (`X { .. }`).
func (c *Context) StructShape() Shape {
	return Shape{Path: c.Name(), Style: c.Item.Src.Fields.Style, Fields: c.Item.Fields}
}

// VariantShape returns the shape of v under prefix, "Self" or the item
// name.
func VariantShape(prefix string, v *walk.Variant) Shape {
	return Shape{Path: prefix + "::" + v.Name(), Style: v.Style(), Fields: v.Fields}
}

// Pattern returns a pattern binding every field through bind, e.g.
// `Self::A { a: _self_a }` or `Self::B(_self_0)`.
func (s Shape) Pattern(bind func(*walk.Field) string) string {
	return s.build(bind)
}

// Bind returns a pattern binding each field to its prefixed binding.
func (s Shape) Bind(prefix string) string {
	return s.Pattern(func(f *walk.Field) string { return f.Binding(prefix) })
}

// Wildcard returns a pattern matching any value of the shape.
func (s Shape) Wildcard() string {
	switch s.Style {
	case model.StyleNamed, model.StyleTuple:
		return s.Path + " { .. }"
	}
	return s.Path
}

// Ctor returns a constructor expression with one value per field.
func (s Shape) Ctor(value func(*walk.Field) string) string {
	return s.build(value)
}

func (s Shape) build(each func(*walk.Field) string) string {
	switch s.Style {
	case model.StyleNamed:
		if len(s.Fields) == 0 {
			return s.Path + " {}"
		}
		parts := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			parts[i] = f.Member() + ": " + each(f)
		}
		return s.Path + " { " + strings.Join(parts, ", ") + " }"
	case model.StyleTuple:
		parts := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			parts[i] = each(f)
		}
		return s.Path + "(" + strings.Join(parts, ", ") + ")"
	}
	return s.Path
}

// Access returns the paren-wrapped place of f on receiver, e.g. "(self.a)".
func Access(receiver string, f *walk.Field) string {
	return "(" + receiver + "." + f.Member() + ")"
}

// Deref returns the paren-wrapped place behind a pattern binding, e.g.
// "(*_self_a)".
func Deref(binding string) string {
	return "(*" + binding + ")"
}
