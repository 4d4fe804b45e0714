// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// eqAssert statically requires `Eq` of the compared value.
func eqAssert(expr string) string {
	return "{ fn _eq<T: ::core::cmp::Eq + ?Sized>(_this: &T) {} _eq(&(" + expr + ")) }"
}

// eqCheck asserts that what a field is compared by is Eq: the key when one
// is given, the field itself otherwise. Comparators are trusted.
func eqCheck(v *walk.Variant, f *walk.Field, ov *override) string {
	this := place(v, f, "this")
	switch {
	case ov == nil:
		return eqAssert(this)
	case ov.key != nil:
		return eqAssert(ov.key.Apply(this))
	}
	return ""
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// eq emits the marker impl and, unless disabled, a const block with a
// function that never runs but only type-checks when every compared
// field is Eq.
func eq(c *synth.Context, checker bool) (*generator.Output, error) {
	b := c.Builder()
	var body []string
	if !c.IsEnum() {
		checks, _, err := fields(c, b, nil, c.Item.Fields, eqCheck)
		if err != nil {
			return nil, err
		}
		body = nonEmpty(checks)
	} else {
		body = append(body, "match this {")
		for _, v := range c.Item.Variants {
			checks, _, err := fields(c, b, v, v.Fields, eqCheck)
			if err != nil {
				return nil, err
			}
			// The checker is a free function, so patterns name the type.
			s := synth.VariantShape(c.Name(), v)
			body = append(body, arm(s.Bind("_this"), nonEmpty(checks)...)...)
		}
		if len(c.Item.Variants) == 0 {
			b.Resolve(c.Outer(nil)...)
		}
		body = append(body, "_ => {}", "}")
	}
	where := b.Build(bound.Plain(c.Kind.Path()))
	out := generator.Single(impl(c, where))
	if checker {
		out.Add(&rust.ConstBlock{Items: []rust.Node{&rust.Fn{
			Attrs: lints,
			Sig:   "fn _f" + rust.Generics(c.Params) + "(this: &" + c.SelfType + ")",
			Where: where,
			Body:  body,
		}}})
	}
	return out, nil
}
