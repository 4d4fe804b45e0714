// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package structural

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// fieldDefault returns a field's value: its own `#[default(expr)]`, or
// the default of its type.
func fieldDefault(f *walk.Field) string {
	if v, ok := f.Helpers.Default.Expr(); ok {
		return v
	}
	return "<" + f.Type() + " as ::core::default::Default>::default()"
}

// defaultUse keeps fields with an explicit value out of the auto-bounds.
func defaultUse(f *walk.Field) synth.Use {
	if _, ok := f.Helpers.Default.Expr(); ok {
		return synth.Bounded
	}
	return synth.Auto
}

func defaultValue(c *synth.Context) (*rust.Impl, error) {
	b := c.Builder()
	var value string
	if v, ok := c.Item.Helpers.Default.Expr(); ok {
		value = v
		b.Resolve(c.Outer(nil)...)
	} else if !c.IsEnum() {
		c.Entity(b, nil, c.Item.Fields, defaultUse)
		value = c.StructShape().Ctor(fieldDefault)
	} else {
		v, err := defaultVariant(c)
		if err != nil {
			return nil, err
		}
		c.Entity(b, v, v.Fields, defaultUse)
		value = synth.VariantShape(c.Name(), v).Ctor(fieldDefault)
	}
	fn := &rust.Fn{Sig: "fn default() -> Self", Body: []string{value}}
	return c.Impl(c.Kind.Path(), b.Build(bound.Plain(c.Kind.Path())), fn), nil
}

// defaultVariant picks the variant marked `#[default]`, or the only one.
func defaultVariant(c *synth.Context) (*walk.Variant, error) {
	var marked []*walk.Variant
	for _, v := range c.Item.Variants {
		if v.Helpers.Default != nil {
			marked = append(marked, v)
		}
	}
	switch {
	case len(marked) == 1:
		return marked[0], nil
	case len(marked) > 1:
		ns := make([]string, len(marked))
		for i, v := range marked {
			ns[i] = v.Name()
		}
		span := marked[0].Src.Span
		if span.IsZero() {
			span = c.Entry.Span
		}
		return nil, errors.At(span, "there are multiple variants with `#[default(...)]` (%s)", strings.Join(ns, ", "))
	case len(c.Item.Variants) == 1:
		return c.Item.Variants[0], nil
	}
	return nil, errors.At(c.Entry.Span, "variant with `#[default(...)]` does not exist.")
}
