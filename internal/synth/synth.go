// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package synth holds the pieces every synthesizer shares: impl headers,
// bound site chains, patterns and constructors.
package synth

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

// Derived is the attribute every generated impl carries.
const Derived = "#[automatically_derived]"

// Context is one trait request on one item.
type Context struct {
	Item  *walk.Item
	Kind  attr.Kind
	Entry *attr.Entry

	// SelfType is the item type applied to its own parameters, e.g.
	// "X<'a, T>".
	SelfType string

	// Params are the impl generic parameter declarations.
	Params []string
}

// New returns the context of request e on w.
func New(w *walk.Item, e *attr.Entry) *Context {
	return &Context{
		Item:     w,
		Kind:     e.Kind,
		Entry:    e,
		SelfType: SelfType(w.Src),
		Params:   ImplParams(w.Src.Generics),
	}
}

// SelfType returns the item name applied to its parameter names.
func SelfType(it *model.Item) string {
	if len(it.Generics.Params) == 0 {
		return it.Name
	}
	args := make([]string, len(it.Generics.Params))
	for i, p := range it.Generics.Params {
		args[i] = p.Name
	}
	return it.Name + "<" + strings.Join(args, ", ") + ">"
}

// ImplParams returns the declarations of an impl over g.
func ImplParams(g model.Generics) []string {
	ps := make([]string, len(g.Params))
	for i, p := range g.Params {
		ps[i] = p.Decl()
	}
	return ps
}

// Name returns the item name.
func (c *Context) Name() string { return c.Item.Src.Name }

// IsEnum reports whether the item is an enum.
func (c *Context) IsEnum() bool { return c.Item.Src.IsEnum() }

// Builder returns a fresh where-clause accumulator for the item.
func (c *Context) Builder() *bound.Builder {
	return bound.NewBuilder(c.Item.Src.Generics, c.SelfType)
}

// Impl returns `impl<..> trait for Self where .. { items }`.
func (c *Context) Impl(trait string, where []string, items ...rust.Node) *rust.Impl {
	return &rust.Impl{
		Attrs:  []string{Derived},
		Params: c.Params,
		Trait:  trait,
		Self:   c.SelfType,
		Where:  where,
		Items:  items,
	}
}

// Outer returns the sites below a field: those of variant v (nil in a
// struct), then those of the type.
func (c *Context) Outer(v *walk.Variant) []*attr.Bounds {
	var sites []*attr.Bounds
	if v != nil {
		sites = append(sites, v.Helpers.Sites(c.Kind)...)
	}
	return append(sites, c.Item.Helpers.Sites(c.Kind)...)
}

// Use tells how a field takes part in a trait's bounds.
type Use int

const (
	// Skip fields contribute nothing.
	Skip Use = iota
	// Bounded fields push their site chain but never an auto-bound.
	Bounded
	// Auto fields push their chain and, if every site inherits, an
	// auto-bound on the field type.
	Auto
)

// Entity pushes the bounds of the fields of one entity: a struct (v nil)
// or a variant. An entity where no field takes part still resolves its
// own sites.
func (c *Context) Entity(b *bound.Builder, v *walk.Variant, fields []*walk.Field, use func(*walk.Field) Use) {
	n := 0
	for _, f := range fields {
		u := use(f)
		if u == Skip {
			continue
		}
		n++
		sites := append(f.Helpers.Sites(c.Kind), c.Outer(v)...)
		if b.Resolve(sites...) && u == Auto {
			b.PushField(f.Type())
		}
	}
	if n == 0 {
		b.Resolve(c.Outer(v)...)
	}
}

// Each pushes the bounds of every entity of the item. In an enum without
// variants the type sites are still resolved.
func (c *Context) Each(b *bound.Builder, use func(*walk.Field) Use) {
	if !c.IsEnum() {
		c.Entity(b, nil, c.Item.Fields, use)
		return
	}
	for _, v := range c.Item.Variants {
		c.Entity(b, v, v.Fields, use)
	}
	if len(c.Item.Variants) == 0 {
		b.Resolve(c.Outer(nil)...)
	}
}

// All is the Use of a trait every field takes part in.
func All(*walk.Field) Use { return Auto }
