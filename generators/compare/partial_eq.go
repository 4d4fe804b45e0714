// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

const (
	someEqual = "::core::option::Option::Some(::core::cmp::Ordering::Equal)"
	equal     = "::core::cmp::Ordering::Equal"
	ordType   = "::core::cmp::Ordering"
	optType   = "::core::option::Option<::core::cmp::Ordering>"
)

func eqPiece(v *walk.Variant, f *walk.Field, ov *override) string {
	const fn = "::core::cmp::PartialEq::eq"
	switch {
	case ov == nil:
		return callField(fn, v, f)
	case ov.key != nil:
		return callKey(fn, ov.key, v, f)
	}
	switch ov.slot {
	case attr.PartialOrd:
		return cmpBy("__eq", v, f, "partial_cmp", optType, "bool", "partial_cmp(this, other) == "+someEqual, ov.by)
	case attr.Ord:
		return cmpBy("__eq", v, f, "cmp", ordType, "bool", "cmp(this, other) == "+equal, ov.by)
	}
	return cmpBy("__eq", v, f, "eq", "bool", "bool", "eq(this, other)", ov.by)
}

func conj(exprs []string) string {
	if len(exprs) == 0 {
		return "true"
	}
	return strings.Join(exprs, " && ")
}

func partialEq(c *synth.Context) (*rust.Impl, error) {
	b := c.Builder()
	var body []string
	if !c.IsEnum() {
		exprs, _, err := fields(c, b, nil, c.Item.Fields, eqPiece)
		if err != nil {
			return nil, err
		}
		body = []string{conj(exprs)}
	} else {
		body = append(body, "match (self, other) {")
		for _, v := range c.Item.Variants {
			exprs, _, err := fields(c, b, v, v.Fields, eqPiece)
			if err != nil {
				return nil, err
			}
			s := synth.VariantShape("Self", v)
			body = append(body, arm("("+s.Bind("_self")+", "+s.Bind("_other")+")", conj(exprs))...)
		}
		if len(c.Item.Variants) == 0 {
			b.Resolve(c.Outer(nil)...)
		}
		body = append(body, "_ => false,", "}")
	}
	fn := &rust.Fn{Sig: "fn eq(&self, other: &Self) -> bool", Body: body}
	return impl(c, b.Build(bound.Plain(c.Kind.Path())), fn), nil
}

// arm returns a match arm with a block body.
func arm(pat string, lines ...string) []string {
	if len(lines) == 0 {
		return []string{pat + " => {}"}
	}
	out := append([]string{pat + " => {"}, lines...)
	return append(out, "}")
}
