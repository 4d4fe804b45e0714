// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package structural

import (
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

const clonePath = "::core::clone::Clone"

// cloneCall returns `<T as ::core::clone::Clone>::method(args)`.
func cloneCall(f *walk.Field, method, args string) string {
	return "<" + f.Type() + " as " + clonePath + ">::" + method + "(" + args + ")"
}

func member(recv string, f *walk.Field) string {
	return recv + "." + f.Member()
}

func clone(c *synth.Context) *rust.Impl {
	b := c.Builder()
	c.Each(b, synth.All)

	var cloneBody, fromBody []string
	if !c.IsEnum() {
		s := c.StructShape()
		cloneBody = []string{s.Ctor(func(f *walk.Field) string {
			return cloneCall(f, "clone", "&"+member("self", f))
		})}
		for _, f := range c.Item.Fields {
			fromBody = append(fromBody, cloneCall(f, "clone_from", "&mut "+member("self", f)+", &"+member("source", f))+";")
		}
	} else {
		cloneBody = enumClone(c)
		fromBody = enumCloneFrom(c)
	}
	return c.Impl(c.Kind.Path(), b.Build(bound.Plain(c.Kind.Path())),
		&rust.Fn{Sig: "fn clone(&self) -> Self", Body: cloneBody},
		&rust.Fn{Sig: "fn clone_from(&mut self, source: &Self)", Body: fromBody},
	)
}

func enumClone(c *synth.Context) []string {
	if len(c.Item.Variants) == 0 {
		return []string{"match *self {}"}
	}
	lines := []string{"match self {"}
	for _, v := range c.Item.Variants {
		s := synth.VariantShape("Self", v)
		ctor := s.Ctor(func(f *walk.Field) string {
			return cloneCall(f, "clone", f.Binding("l"))
		})
		lines = append(lines, s.Bind("l")+" => "+ctor+",")
	}
	return append(lines, "}")
}

// enumCloneFrom reuses the fields of self when both sides are the same
// variant and falls back to a plain clone otherwise.
func enumCloneFrom(c *synth.Context) []string {
	lines := []string{"match (self, source) {"}
	for _, v := range c.Item.Variants {
		s := synth.VariantShape("Self", v)
		pat := "(" + s.Bind("l") + ", " + s.Bind("r") + ")"
		if len(v.Fields) == 0 {
			lines = append(lines, pat+" => {}")
			continue
		}
		lines = append(lines, pat+" => {")
		for _, f := range v.Fields {
			lines = append(lines, cloneCall(f, "clone_from", f.Binding("l")+", "+f.Binding("r"))+";")
		}
		lines = append(lines, "}")
	}
	return append(lines,
		"(lhs, rhs) => *lhs = <Self as "+clonePath+">::clone(rhs),",
		"}",
	)
}
