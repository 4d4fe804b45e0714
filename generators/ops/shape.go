// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ops

import (
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// form is one owned/borrowed combination of the operands.
type form struct {
	lhs, rhs bool
}

// binaryForms are in emission order: T op T, T op &T, &T op T, &T op &T.
var binaryForms = []form{{false, false}, {false, true}, {true, false}, {true, true}}

func ref(s string, is bool) string {
	if is {
		return "&" + s
	}
	return s
}

// hrtb returns the lifetime-bound form of ty, with its binder, when
// borrowed: `for<'a> ` and `&'a ty`.
func hrtb(ty string, is bool) string {
	if is {
		return "&'a " + ty
	}
	return ty
}

func binder(borrowed bool) string {
	if borrowed {
		return "for<'a> "
	}
	return ""
}

// BinaryBound formats `ty: Add<ty, Output = ty>` for one operand form,
// e.g. `for<'a> &'a ty: ::core::ops::Add<&'a ty, Output = ty>`.
func BinaryBound(trait string, lhs, rhs bool) bound.Format {
	return func(ty string) []string {
		return []string{binder(lhs || rhs) + hrtb(ty, lhs) + ": " + trait + "<" + hrtb(ty, rhs) + ", Output = " + ty + ">"}
	}
}

// AssignBound formats `ty: AddAssign<ty>` or, for a borrowed right
// operand, `for<'a> ty: AddAssign<&'a ty>`.
func AssignBound(trait string, rhs bool) bound.Format {
	return func(ty string) []string {
		return []string{binder(rhs) + ty + ": " + trait + "<" + hrtb(ty, rhs) + ">"}
	}
}

// UnaryBound formats `ty: Neg<Output = ty>` or, for a borrowed receiver,
// `for<'a> &'a ty: Neg<Output = ty>`.
func UnaryBound(trait string, lhs bool) bound.Format {
	return func(ty string) []string {
		return []string{binder(lhs) + hrtb(ty, lhs) + ": " + trait + "<Output = " + ty + ">"}
	}
}

// bounds collects the bound sites of every field once; each form only
// formats them differently.
func bounds(c *synth.Context) *bound.Builder {
	b := c.Builder()
	c.Each(b, synth.All)
	return b
}

func binary(c *synth.Context) []rust.Node {
	trait, method := c.Kind.Path(), c.Kind.Method()
	b := bounds(c)
	var out []rust.Node
	for _, fm := range binaryForms {
		rhsTy := ref(c.SelfType, fm.rhs)
		value := c.StructShape().Ctor(func(f *walk.Field) string {
			return "<" + ref(f.Type(), fm.lhs) + " as " + trait + "<" + ref(f.Type(), fm.rhs) + ">>::" + method +
				"(" + ref(member("self", f), fm.lhs) + ", " + ref(member("rhs", f), fm.rhs) + ")"
		})
		im := c.Impl(trait+"<"+rhsTy+">", b.Build(BinaryBound(trait, fm.lhs, fm.rhs)),
			&rust.AssocType{Name: "Output", Type: c.SelfType},
			&rust.Fn{Sig: "fn " + method + "(self, rhs: " + rhsTy + ") -> Self::Output", Body: []string{value}},
		)
		im.Self = ref(c.SelfType, fm.lhs)
		out = append(out, im)
	}
	return out
}

func assign(c *synth.Context) []rust.Node {
	trait, method := c.Kind.Path(), c.Kind.Method()
	b := bounds(c)
	var out []rust.Node
	for _, rhs := range []bool{false, true} {
		rhsTy := ref(c.SelfType, rhs)
		var body []string
		for _, f := range c.Item.Fields {
			body = append(body, "<"+f.Type()+" as "+trait+"<"+ref(f.Type(), rhs)+">>::"+method+
				"(&mut "+member("self", f)+", "+ref(member("rhs", f), rhs)+");")
		}
		out = append(out, c.Impl(trait+"<"+rhsTy+">", b.Build(AssignBound(trait, rhs)),
			&rust.Fn{Sig: "fn " + method + "(&mut self, rhs: " + rhsTy + ")", Body: body},
		))
	}
	return out
}

func unary(c *synth.Context) []rust.Node {
	trait, method := c.Kind.Path(), c.Kind.Method()
	b := bounds(c)
	var out []rust.Node
	for _, lhs := range []bool{false, true} {
		value := c.StructShape().Ctor(func(f *walk.Field) string {
			return "<" + ref(f.Type(), lhs) + " as " + trait + ">::" + method + "(" + ref(member("self", f), lhs) + ")"
		})
		im := c.Impl(trait, b.Build(UnaryBound(trait, lhs)),
			&rust.AssocType{Name: "Output", Type: c.SelfType},
			&rust.Fn{Sig: "fn " + method + "(self) -> Self::Output", Body: []string{value}},
		)
		im.Self = ref(c.SelfType, lhs)
		out = append(out, im)
	}
	return out
}

func member(recv string, f *walk.Field) string {
	return recv + "." + f.Member()
}
