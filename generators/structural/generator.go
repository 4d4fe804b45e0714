// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package structural synthesizes the traits that follow an item's shape:
// Copy, Clone, Debug, Default, Deref and DerefMut.
package structural

import (
	"context"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/bound"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
)

// Family is the registry family of this package.
const Family = "structural"

// Synthesizer implements [generator.Synthesizer] for one structural trait.
type Synthesizer struct {
	kind attr.Kind
}

var kinds = []attr.Kind{attr.Copy, attr.Clone, attr.Debug, attr.Default, attr.Deref, attr.DerefMut}

// NewSynthesizer creates a synthesizer for k.
func NewSynthesizer(k attr.Kind) *Synthesizer {
	for _, s := range kinds {
		if s == k {
			return &Synthesizer{kind: k}
		}
	}
	panic("structural: not a structural trait: " + k.String())
}

// All returns a synthesizer for every structural trait.
func All() []generator.Synthesizer {
	out := make([]generator.Synthesizer, len(kinds))
	for i, k := range kinds {
		out[i] = NewSynthesizer(k)
	}
	return out
}

var descriptions = map[attr.Kind]string{
	attr.Copy:     "Marker impl bounded like Clone",
	attr.Clone:    "Field-wise clone and clone_from",
	attr.Debug:    "Struct and tuple formatting with ignored and transparent fields",
	attr.Default:  "Field-wise or explicit default values, or the #[default] variant",
	attr.Deref:    "Dereference to the only field",
	attr.DerefMut: "Mutable dereference to the only field",
}

var requires = map[attr.Kind][]string{
	attr.Copy:     {"Clone"},
	attr.DerefMut: {"Deref"},
}

// Metadata returns information about this synthesizer.
func (s *Synthesizer) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        s.kind.String(),
		Family:      Family,
		Trait:       s.kind.Path(),
		Requires:    requires[s.kind],
		Description: descriptions[s.kind],
	}
}

// Synthesize produces the impl for one request.
func (s *Synthesizer) Synthesize(_ context.Context, in *generator.Input, _ generator.Config) (*generator.Output, error) {
	if in.Item == nil {
		return nil, errors.At(in.Entry.Span, "`#[derive_ex(%s)]` cannot be used with impl blocks", s.kind)
	}
	c := synth.New(in.Item, in.Entry)
	var (
		im  *rust.Impl
		err error
	)
	switch s.kind {
	case attr.Copy:
		im = marker(c)
	case attr.Clone:
		im = clone(c)
	case attr.Debug:
		im, err = debug(c)
	case attr.Default:
		im, err = defaultValue(c)
	default:
		im, err = deref(c)
	}
	if err != nil {
		return nil, err
	}
	return generator.Single(im), nil
}

// marker emits `impl Copy for X {}` bounded like Clone.
func marker(c *synth.Context) *rust.Impl {
	b := c.Builder()
	c.Each(b, synth.All)
	return c.Impl(c.Kind.Path(), b.Build(bound.Plain(c.Kind.Path())))
}
