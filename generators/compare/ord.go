// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"strconv"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// order holds what differs between PartialOrd and Ord.
type order struct {
	method string
	ret    string
	fn     string
	equal  string
	prefix string

	// reverse flips one field's result.
	reverse func(expr string) string
}

var (
	partialOrder = order{
		method:  "partial_cmp",
		ret:     optType,
		fn:      "::core::cmp::PartialOrd::partial_cmp",
		equal:   someEqual,
		prefix:  "__partial_ord",
		reverse: func(e string) string { return "::core::option::Option::map(" + e + ", ::core::cmp::Ordering::reverse)" },
	}
	totalOrder = order{
		method:  "cmp",
		ret:     ordType,
		fn:      "::core::cmp::Ord::cmp",
		equal:   equal,
		prefix:  "__ord",
		reverse: func(e string) string { return "::core::cmp::Ordering::reverse(" + e + ")" },
	}
)

func orderOf(k attr.Kind) order {
	if k == attr.Ord {
		return totalOrder
	}
	return partialOrder
}

func (o order) piece(v *walk.Variant, f *walk.Field, ov *override) string {
	switch {
	case ov == nil:
		return callField(o.fn, v, f)
	case ov.key != nil:
		return callKey(o.fn, ov.key, v, f)
	case o.ret == optType && ov.slot == attr.Ord:
		return cmpBy(o.prefix, v, f, "cmp", ordType, optType, "::core::option::Option::Some(cmp(this, other))", ov.by)
	}
	return cmpBy(o.prefix, v, f, o.method, o.ret, o.ret, o.method+"(this, other)", ov.by)
}

// chain folds the field comparisons of one entity: the first field that
// is not equal decides.
func (o order) chain(c *synth.Context, b *bound.Builder, v *walk.Variant, fs []*walk.Field) ([]string, error) {
	exprs, used, err := fields(c, b, v, fs, o.piece)
	if err != nil {
		return nil, err
	}
	var lines []string
	for i, expr := range exprs {
		rev, err := used[i].Helpers.Compare.IsReverse(c.Kind)
		if err != nil {
			return nil, err
		}
		if rev {
			expr = o.reverse(expr)
		}
		lines = append(lines,
			"match "+expr+" {",
			o.equal+" => {}",
			"o => return o,",
			"}",
		)
	}
	return append(lines, o.equal), nil
}

// toIndex maps each variant to its declaration index, so values of
// different variants compare by declaration order.
func toIndex(c *synth.Context) []string {
	lines := []string{
		"let to_index = |this: &Self| -> usize {",
		"match this {",
	}
	for i, v := range c.Item.Variants {
		lines = append(lines, synth.VariantShape("Self", v).Wildcard()+" => "+strconv.Itoa(i)+",")
	}
	return append(lines, "_ => unreachable!(),", "}", "};")
}

func ordering(c *synth.Context) (*rust.Impl, error) {
	o := orderOf(c.Kind)
	b := c.Builder()
	var body []string
	if !c.IsEnum() {
		lines, err := o.chain(c, b, nil, c.Item.Fields)
		if err != nil {
			return nil, err
		}
		body = lines
	} else {
		body = append(body, "match (self, other) {")
		for _, v := range c.Item.Variants {
			lines, err := o.chain(c, b, v, v.Fields)
			if err != nil {
				return nil, err
			}
			s := synth.VariantShape("Self", v)
			body = append(body, arm("("+s.Bind("_self")+", "+s.Bind("_other")+")", lines...)...)
		}
		if len(c.Item.Variants) == 0 {
			b.Resolve(c.Outer(nil)...)
		}
		cross := append(toIndex(c), o.fn+"(&to_index(this), &to_index(other))")
		body = append(body, arm("(this, other)", cross...)...)
		body = append(body, "}")
	}
	fn := &rust.Fn{
		Sig:  "fn " + o.method + "(&self, other: &Self) -> " + o.ret,
		Body: body,
	}
	return impl(c, b.Build(bound.Plain(c.Kind.Path())), fn), nil
}
