// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package compare

import (
	"fmt"

	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/walk"
)

// hashPiece feeds one field to the hasher. Keys come through the same
// chain equality uses, so equal values hash alike.
func hashPiece(v *walk.Variant, f *walk.Field, ov *override) string {
	this := place(v, f, "self")
	switch {
	case ov == nil:
		return "::core::hash::Hash::hash(&(" + this + "), state);"
	case ov.key != nil:
		return "::core::hash::Hash::hash(&(" + ov.key.Apply(this) + "), state);"
	}
	ty := f.Type()
	name := f.Binding("__hash")
	return fmt.Sprintf("{ fn %s<H: ::core::hash::Hasher>(this: &%s, state: &mut H, hash: impl ::core::ops::Fn(&%s, &mut H)) { hash(this, state) } %s(&%s, state, %s) }",
		name, ty, ty, name, this, ov.by)
}

func hash(c *synth.Context) (*rust.Impl, error) {
	b := c.Builder()
	var body []string
	if !c.IsEnum() {
		lines, _, err := fields(c, b, nil, c.Item.Fields, hashPiece)
		if err != nil {
			return nil, err
		}
		body = lines
	} else {
		body = append(body, "match self {")
		for _, v := range c.Item.Variants {
			lines, _, err := fields(c, b, v, v.Fields, hashPiece)
			if err != nil {
				return nil, err
			}
			body = append(body, arm(synth.VariantShape("Self", v).Bind("_self"), lines...)...)
		}
		if len(c.Item.Variants) == 0 {
			b.Resolve(c.Outer(nil)...)
		}
		body = append(body, "_ => unreachable!(),", "}")
	}
	fn := &rust.Fn{
		Sig:  "fn hash<H: ::core::hash::Hasher>(&self, state: &mut H)",
		Body: body,
	}
	return impl(c, b.Build(bound.Plain(c.Kind.Path())), fn), nil
}
