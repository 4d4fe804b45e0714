// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package structural

import (
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/names"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

const debugSig = "fn fmt(&self, f: &mut ::core::fmt::Formatter<'_>) -> ::core::fmt::Result"

func ignored(f *walk.Field) bool {
	return f.Helpers.Debug != nil && f.Helpers.Debug.Ignore
}

// transparent returns the field whose formatting replaces the entity's
// own, if any.
func transparent(fs []*walk.Field) (*walk.Field, error) {
	var found *walk.Field
	for _, f := range fs {
		d := f.Helpers.Debug
		if d == nil || !d.Transparent {
			continue
		}
		if d.Ignore {
			return nil, errors.At(d.TransparentSpan, "cannot specify both `ignore` and `transparent`")
		}
		if found != nil {
			return nil, errors.At(d.TransparentSpan, "`transparent` can be specified for only one field")
		}
		found = f
	}
	return found, nil
}

// entity is the formatting of one struct or variant. ref returns the
// reference to a field's value.
type entity struct {
	name   string
	style  model.FieldStyle
	fields []*walk.Field
	ref    func(*walk.Field) string
}

func (e entity) expr(through *walk.Field) string {
	if through != nil {
		return "::core::fmt::Debug::fmt(" + e.ref(through) + ", f)"
	}
	name := names.Quote(e.name)
	var s string
	switch e.style {
	case model.StyleNamed:
		s = "f.debug_struct(" + name + ")"
		for _, fl := range e.fields {
			if !ignored(fl) {
				s += ".field(" + names.Quote(names.Unraw(fl.Src.Name)) + ", " + e.ref(fl) + ")"
			}
		}
	case model.StyleTuple:
		s = "f.debug_tuple(" + name + ")"
		for _, fl := range e.fields {
			if !ignored(fl) {
				s += ".field(" + e.ref(fl) + ")"
			}
		}
	default:
		return "f.write_str(" + name + ")"
	}
	return s + ".finish()"
}

// debugUse binds only what is formatted: the transparent field when there
// is one, the fields not ignored otherwise.
func debugUse(through *walk.Field) func(*walk.Field) synth.Use {
	return func(f *walk.Field) synth.Use {
		switch {
		case through != nil && f != through, through == nil && ignored(f):
			return synth.Skip
		}
		return synth.Auto
	}
}

func debug(c *synth.Context) (*rust.Impl, error) {
	b := c.Builder()
	var body []string
	if !c.IsEnum() {
		through, err := transparent(c.Item.Fields)
		if err != nil {
			return nil, err
		}
		c.Entity(b, nil, c.Item.Fields, debugUse(through))
		e := entity{
			name:   c.Name(),
			style:  c.Item.Src.Fields.Style,
			fields: c.Item.Fields,
			ref:    func(f *walk.Field) string { return "&" + member("self", f) },
		}
		body = []string{e.expr(through)}
	} else {
		lines, err := debugArms(c, b)
		if err != nil {
			return nil, err
		}
		body = lines
	}
	fn := &rust.Fn{Sig: debugSig, Body: body}
	return c.Impl(c.Kind.Path(), b.Build(bound.Plain(c.Kind.Path())), fn), nil
}

func debugArms(c *synth.Context, b *bound.Builder) ([]string, error) {
	if len(c.Item.Variants) == 0 {
		b.Resolve(c.Outer(nil)...)
		return []string{"match *self {}"}, nil
	}
	lines := []string{"match self {"}
	for _, v := range c.Item.Variants {
		through, err := transparent(v.Fields)
		if err != nil {
			return nil, err
		}
		c.Entity(b, v, v.Fields, debugUse(through))
		used := debugUse(through)
		pat := synth.VariantShape("Self", v).Pattern(func(f *walk.Field) string {
			if used(f) == synth.Skip {
				return "_"
			}
			return f.Binding("_self")
		})
		e := entity{
			name:   v.Name(),
			style:  v.Style(),
			fields: v.Fields,
			ref:    func(f *walk.Field) string { return f.Binding("_self") },
		}
		lines = append(lines, pat+" => "+e.expr(through)+",")
	}
	return append(lines, "}"), nil
}
