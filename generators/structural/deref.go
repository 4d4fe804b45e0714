// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package structural

import (
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
)

// deref emits Deref or DerefMut to the only field of a struct.
// Field types are not bounded: the impl names the field type itself.
func deref(c *synth.Context) (*rust.Impl, error) {
	if c.IsEnum() {
		return nil, errors.At(c.Entry.Span, "derive `%s` for enum is not supported", c.Kind)
	}
	if len(c.Item.Fields) != 1 {
		return nil, errors.At(c.Entry.Span, "`#[derive_ex(%s)]` supports only single field struct.", c.Kind)
	}
	f := c.Item.Fields[0]
	b := c.Builder()
	b.Resolve(c.Outer(nil)...)
	where := b.Build(bound.Plain(c.Kind.Path()))

	if c.Kind == attr.DerefMut {
		return c.Impl(c.Kind.Path(), where, &rust.Fn{
			Sig:  "fn deref_mut(&mut self) -> &mut " + f.Type(),
			Body: []string{"&mut " + member("self", f)},
		}), nil
	}
	return c.Impl(c.Kind.Path(), where,
		&rust.AssocType{Name: "Target", Type: f.Type()},
		&rust.Fn{
			Sig:  "fn deref(&self) -> &" + f.Type(),
			Body: []string{"&" + member("self", f)},
		},
	), nil
}
