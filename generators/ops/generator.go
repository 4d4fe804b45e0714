// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ops synthesizes the arithmetic and bitwise operator traits.
//
// On a struct, an operator is applied field by field and the result is
// rebuilt with the same constructor; every combination of owned and
// borrowed operands is generated. On a hand-written `impl Add for T`, the
// missing combinations and the assignment form are derived from it.
package ops

import (
	"context"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/synth"
)

// Family is the registry family of this package.
const Family = "ops"

// Synthesizer implements [generator.Synthesizer] for one operator trait.
type Synthesizer struct {
	kind attr.Kind
}

// NewSynthesizer creates a synthesizer for k, which must be an operator
// trait.
func NewSynthesizer(k attr.Kind) *Synthesizer {
	if !k.IsOp() {
		panic("ops: not an operator trait: " + k.String())
	}
	return &Synthesizer{kind: k}
}

// All returns a synthesizer for every operator trait.
func All() []generator.Synthesizer {
	var out []generator.Synthesizer
	for _, k := range attr.Kinds() {
		if k.IsOp() {
			out = append(out, NewSynthesizer(k))
		}
	}
	return out
}

// Metadata returns information about this synthesizer.
func (s *Synthesizer) Metadata() generator.Metadata {
	m := generator.Metadata{
		Name:     s.kind.String(),
		Family:   Family,
		Trait:    s.kind.Path(),
		FromImpl: !s.kind.IsUnary(),
	}
	switch {
	case s.kind.IsBinary():
		m.Description = "Field-wise `" + s.kind.Method() + "` for owned and borrowed operands"
	case s.kind.IsAssign():
		m.Description = "Field-wise `" + s.kind.Method() + "` for owned and borrowed right operands"
	default:
		m.Description = "Field-wise `" + s.kind.Method() + "` for owned and borrowed receivers"
	}
	return m
}

// Synthesize produces the impls for one request.
func (s *Synthesizer) Synthesize(_ context.Context, in *generator.Input, _ generator.Config) (*generator.Output, error) {
	if in.Impl != nil {
		if s.kind.IsUnary() {
			return nil, errors.At(in.Entry.Span, "`#[derive_ex(%s)]` cannot be used with impl blocks", s.kind)
		}
		return fromImpl(in)
	}
	c := synth.New(in.Item, in.Entry)
	if c.IsEnum() {
		return nil, errors.At(in.Entry.Span, "derive `%s` for enum is not supported", s.kind)
	}
	out := generator.NewOutput()
	switch {
	case s.kind.IsBinary():
		out.Add(binary(c)...)
	case s.kind.IsAssign():
		out.Add(assign(c)...)
	default:
		out.Add(unary(c)...)
	}
	return out, nil
}
