// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package compare synthesizes the comparison family: PartialEq, Eq,
// PartialOrd, Ord and Hash.
//
// The five traits share one per-field configuration. A field's behavior
// for a trait is looked up along a fixed chain of helper attributes (for
// PartialEq: partial_eq, eq, partial_ord, ord), so that Hash agrees with
// Eq and PartialOrd agrees with Ord whenever a key or comparator is given
// only once.
package compare

import (
	"context"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
)

// Family is the registry family of this package.
const Family = "compare"

// OptionEqChecker disables the static Eq assertion block when "off".
const OptionEqChecker = "eq.checker"

// lints are allowed on every comparison impl: the generated places are
// paren-wrapped and then borrowed, as in `&((self.a))`.
var lints = []string{
	"#[allow(clippy::double_parens)]",
	"#[allow(unused_parens)]",
}

// Synthesizer implements [generator.Synthesizer] for one comparison trait.
type Synthesizer struct {
	kind attr.Kind
}

// NewSynthesizer creates a synthesizer for k, which must be a comparison
// trait.
func NewSynthesizer(k attr.Kind) *Synthesizer {
	if !k.IsCompare() {
		panic("compare: not a comparison trait: " + k.String())
	}
	return &Synthesizer{kind: k}
}

// All returns a synthesizer for every comparison trait.
func All() []generator.Synthesizer {
	return []generator.Synthesizer{
		NewSynthesizer(attr.PartialEq),
		NewSynthesizer(attr.Eq),
		NewSynthesizer(attr.PartialOrd),
		NewSynthesizer(attr.Ord),
		NewSynthesizer(attr.Hash),
	}
}

var descriptions = map[attr.Kind]string{
	attr.PartialEq:  "Field-wise equality, with per-field keys and comparators",
	attr.Eq:         "Total equality marker, statically checked per field",
	attr.PartialOrd: "Lexicographic partial ordering in declaration order",
	attr.Ord:        "Lexicographic total ordering in declaration order",
	attr.Hash:       "Hashing consistent with the derived equality",
}

var requires = map[attr.Kind][]string{
	attr.Eq:         {"PartialEq"},
	attr.PartialOrd: {"PartialEq"},
	attr.Ord:        {"Eq", "PartialOrd"},
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
func (s *Synthesizer) Synthesize(_ context.Context, in *generator.Input, cfg generator.Config) (*generator.Output, error) {
	if in.Item == nil {
		return nil, errors.At(in.Entry.Span, "`#[derive_ex(%s)]` cannot be used with impl blocks", s.kind)
	}
	c := synth.New(in.Item, in.Entry)
	switch s.kind {
	case attr.PartialEq:
		return one(partialEq(c))
	case attr.Eq:
		return eq(c, cfg.Option(OptionEqChecker, "on") != "off")
	case attr.PartialOrd, attr.Ord:
		return one(ordering(c))
	default:
		return one(hash(c))
	}
}

func one(im *rust.Impl, err error) (*generator.Output, error) {
	if err != nil {
		return nil, err
	}
	return generator.Single(im), nil
}

// impl returns the comparison impl header with its lints allowed.
func impl(c *synth.Context, where []string, items ...rust.Node) *rust.Impl {
	im := c.Impl(c.Kind.Path(), where, items...)
	im.Attrs = append(im.Attrs, lints...)
	return im
}
