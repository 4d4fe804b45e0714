// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"fmt"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// override is the helper attribute that replaces a field's default
// comparison for one trait.
type override struct {
	slot attr.Kind
	by   token.Stream
	key  *attr.Template
}

// lookup walks target's chain for one field. Each slot passed contributes
// its bound while the chain still allows it. A nil override means the
// field's own implementation of target is used.
func lookup(target attr.Kind, cmp *attr.Compare, b *bound.Builder, use *bool) (*override, error) {
	for _, k := range target.Chain() {
		s := cmp.Slot(k)
		if *use {
			*use = b.Push(s.Bound)
		}
		by, key := attr.Consumes(target, k)
		if by && s.HasBy() {
			return &override{slot: k, by: s.By}, nil
		}
		if key && s.Key != nil {
			return &override{slot: k, key: s.Key}, nil
		}
	}
	if bad, span, ok := cmp.Conflict(target); ok {
		return nil, attr.ConflictError(target, bad, span)
	}
	return nil, nil
}

// place returns the paren-wrapped place of f for one side ("self",
// "other" or "this"): a field access in a struct, the dereferenced
// binding in an enum arm.
func place(v *walk.Variant, f *walk.Field, side string) string {
	if v == nil {
		return synth.Access(side, f)
	}
	return synth.Deref(f.Binding("_" + side))
}

// piece builds the expression of one participating field.
type piece func(v *walk.Variant, f *walk.Field, ov *override) string

// fields builds the pieces of one entity (v is nil in a struct) and pushes
// the bounds of each participating field. An entity where no field takes
// part resolves its own sites once.
func fields(c *synth.Context, b *bound.Builder, v *walk.Variant, fs []*walk.Field, build piece) ([]string, []*walk.Field, error) {
	var (
		out  []string
		used []*walk.Field
	)
	for _, f := range fs {
		cmp := &f.Helpers.Compare
		ignored, err := cmp.IsIgnore(c.Kind)
		if err != nil {
			return nil, nil, err
		}
		if ignored {
			continue
		}
		use := true
		ov, err := lookup(c.Kind, cmp, b, &use)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, build(v, f, ov))
		used = append(used, f)
		if use {
			use = b.Resolve(append(f.Helpers.EntrySites(c.Kind), c.Outer(v)...)...)
		}
		if use && ov == nil {
			b.PushField(f.Type())
		}
	}
	if len(used) == 0 {
		b.Resolve(c.Outer(v)...)
	}
	return out, used, nil
}

// cmpBy wraps a user comparator over (this, other) in a local function
// so the closure is checked against the field type, e.g.
// `{ fn __eq_a(this: &T, other: &T, eq: impl ::core::ops::Fn(&T, &T) -> bool) -> bool { eq(this, other) } __eq_a(&(self.a), &(other.a), f) }`.
// param is the comparator parameter name and fnRet its return type.
func cmpBy(prefix string, v *walk.Variant, f *walk.Field, param, fnRet, ret, body string, by token.Stream) string {
	ty := f.Type()
	name := f.Binding(prefix)
	return fmt.Sprintf("{ fn %s(this: &%s, other: &%s, %s: impl ::core::ops::Fn(&%s, &%s) -> %s) -> %s { %s } %s(&%s, &%s, %s) }",
		name, ty, ty, param, ty, ty, fnRet, ret, body, name, place(v, f, "self"), place(v, f, "other"), by)
}

// callKey compares the keys of both sides with a trait function, e.g.
// `::core::cmp::Ord::cmp(&((self.a).len()), &((other.a).len()))`.
func callKey(fn string, key *attr.Template, v *walk.Variant, f *walk.Field) string {
	return call(fn, key.Apply(place(v, f, "self")), key.Apply(place(v, f, "other")))
}

// callField compares both sides of f with a trait function.
func callField(fn string, v *walk.Variant, f *walk.Field) string {
	return call(fn, place(v, f, "self"), place(v, f, "other"))
}

func call(fn, this, other string) string {
	return fn + "(&(" + this + "), &(" + other + "))"
}
