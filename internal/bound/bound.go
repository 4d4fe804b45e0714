// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package bound computes the where clause of a generated impl.
//
// A Builder accumulates predicates while a synthesizer walks the fields of
// an item. Bound sites are pushed in priority order; the first site that
// says something decides whether lower sites, and finally the automatic
// "field type implements the trait" bound, still contribute.
package bound

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// Format renders the predicates requiring the derived trait of ty.
type Format func(ty string) []string

// Plain formats `ty: trait`.
func Plain(trait string) Format {
	return func(ty string) []string {
		return []string{ty + ": " + trait}
	}
}

type entry struct {
	text string
	ty   bool
}

// Builder is the where-clause accumulator of one impl.
type Builder struct {
	self    string
	params  map[string]bool
	entries []entry
}

// NewBuilder returns a builder seeded with the item's own where
// predicates. selfType is the item type with its generic arguments, used
// to expand `Self`.
func NewBuilder(g model.Generics, selfType string) *Builder {
	b := &Builder{self: selfType, params: map[string]bool{}}
	for _, name := range g.Names() {
		b.params[name] = true
	}
	for _, w := range g.Where {
		b.entries = append(b.entries, entry{text: b.expand(w)})
	}
	return b
}

func (b *Builder) expand(text string) string {
	s, err := token.Lex(text)
	if err != nil {
		return strings.TrimSpace(text)
	}
	return token.ExpandSelf(s, b.self).String()
}

// Push adds the items of one bound site and reports whether lower
// priority sites still apply. An inherit site adds nothing and continues.
// An explicit site continues only when it lists `..`, so `bound()` stops.
// `Self` in the items is expanded.
func (b *Builder) Push(bs *attr.Bounds) bool {
	if bs == nil {
		return true
	}
	for _, it := range bs.Items {
		if it.Pred {
			b.PushPred(b.expand(it.Text))
		} else {
			b.PushType(b.expand(it.Text))
		}
	}
	return bs.Continue
}

// Resolve pushes sites in priority order until one stops the chain.
// It reports whether the chain fell through every site.
func (b *Builder) Resolve(sites ...*attr.Bounds) bool {
	for _, s := range sites {
		if !b.Push(s) {
			return false
		}
	}
	return true
}

// PushPred adds a verbatim where predicate.
func (b *Builder) PushPred(pred string) {
	b.entries = append(b.entries, entry{text: pred})
}

// PushType requires the derived trait of ty.
func (b *Builder) PushType(ty string) {
	b.entries = append(b.entries, entry{text: ty, ty: true})
}

// PushField adds the auto-bound for a field of type ty: the field type
// itself must implement the trait. Types that mention no type or const
// parameter are concrete and need no bound.
func (b *Builder) PushField(ty string) {
	if t, ok := b.Generic(ty); ok {
		b.PushType(t)
	}
}

var selfName = map[string]bool{"Self": true}

// Generic returns ty with `Self` expanded, and whether it mentions a
// generic parameter of the item. `Self` counts as a mention when the item
// has type or const parameters.
func (b *Builder) Generic(ty string) (string, bool) {
	s, err := token.Lex(ty)
	if err != nil {
		return ty, false
	}
	generic := token.MentionsAny(s, b.params) ||
		len(b.params) > 0 && token.MentionsAny(s, selfName)
	return token.ExpandSelf(s, b.self).String(), generic
}

// Len returns the number of pushed entries, duplicates included.
func (b *Builder) Len() int { return len(b.entries) }

// Build renders the predicates, formatting each required type with
// format. Duplicates are dropped; the first occurrence keeps its place.
func (b *Builder) Build(format Format) []string {
	set := linkedhashset.New()
	for _, e := range b.entries {
		if !e.ty {
			set.Add(e.text)
			continue
		}
		for _, p := range format(e.text) {
			set.Add(p)
		}
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out
}
