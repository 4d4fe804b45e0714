// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ops

import (
	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/synth"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// source is a hand-written operator impl, with references peeled off its
// operand types.
type source struct {
	kind     attr.Kind
	params   []string
	where    []string
	self     string
	this     string
	thisRef  bool
	rhsOrig  string
	rhs      string
	rhsRef   bool
	impl     *model.Impl
	implSpan model.Span
}

// splitTrait returns the last path segment of a trait path and its
// generic arguments: "::core::ops::Add<&X>" gives "Add" and ["&X"].
func splitTrait(text string) (string, []token.Stream, error) {
	s, err := token.Lex(text)
	if err != nil {
		return "", nil, err
	}
	var name string
	for i, t := range s {
		switch {
		case t.Kind == token.Ident:
			name = t.Text
		case t.IsPunct('<'):
			end := len(s)
			if s[end-1].IsPunct('>') {
				end--
			}
			return name, token.Split(s[i+1:end], ',', true), nil
		}
	}
	return name, nil, nil
}

// refElem strips one plain `&` from ty. `&'a T` and `&mut T` are kept.
func refElem(ty string) (string, bool) {
	s, err := token.Lex(ty)
	if err != nil || len(s) < 2 || !s[0].IsPunct('&') {
		return ty, false
	}
	if s[1].Kind == token.Lifetime || s[1].IsIdent("mut") {
		return ty, false
	}
	return s[1:].String(), true
}

func expandSelf(text, self string) string {
	s, err := token.Lex(text)
	if err != nil {
		return text
	}
	return token.ExpandSelf(s, self).String()
}

func parseSource(it *model.Item) (*source, error) {
	im := it.Impl
	if im == nil || im.Trait == "" {
		return nil, errors.At(it.Span, "must be used with `impl {Trait} for {Type}`")
	}
	if im.Negative {
		return nil, errors.At(it.Span, "cannot use with negative trait")
	}
	name, args, err := splitTrait(im.Trait)
	if err != nil || name == "" {
		return nil, errors.At(it.Span, "must be used with `impl {Trait} for {Type}`")
	}
	k, ok := attr.ParseKind(name)
	if !ok || !k.IsBinary() && !k.IsAssign() {
		return nil, errors.At(it.Span, "`%s` is not supported for `#[derive_ex]`", name)
	}
	src := &source{
		kind:     k,
		params:   synth.ImplParams(im.Generics),
		self:     im.Self,
		impl:     im,
		implSpan: it.Span,
	}
	for _, w := range im.Generics.Where {
		src.where = append(src.where, expandSelf(w, im.Self))
	}
	src.this, src.thisRef = refElem(im.Self)
	src.rhsOrig = im.Self
	if len(args) == 1 {
		src.rhsOrig = token.ExpandSelf(args[0], im.Self).String()
	}
	src.rhs, src.rhsRef = refElem(src.rhsOrig)
	return src, nil
}

// output returns the `Output` associated type of a binary impl.
func (s *source) output() (string, error) {
	a, ok := s.impl.AssocType("Output")
	if !ok {
		return "", errors.At(s.implSpan, "cannot find associate type `Output`")
	}
	return expandSelf(a.Type, s.self), nil
}

func (s *source) header(trait, self string, items ...rust.Node) *rust.Impl {
	return &rust.Impl{
		Attrs:  []string{synth.Derived},
		Params: s.params,
		Trait:  trait,
		Self:   self,
		Where:  s.where,
		Items:  items,
	}
}

// owned converts expr of type ty from the form the impl receives to the
// form the hand-written impl takes, cloning when it needs an owned value.
func owned(expr, ty string, have, want bool) string {
	switch {
	case have && !want:
		return "<" + ty + " as ::core::clone::Clone>::clone(" + expr + ")"
	case !have && want:
		return "&" + expr
	}
	return expr
}

func fromImpl(in *generator.Input) (*generator.Output, error) {
	src, err := parseSource(in.Impl)
	if err != nil {
		return nil, err
	}
	k := in.Entry.Kind
	bin, asg := src.kind.Binary(), src.kind.Binary().Assign()
	if k != bin && k != asg {
		return nil, errors.At(in.Entry.Span, "expected `%s` or `%s`", bin, asg)
	}
	if src.kind.IsAssign() {
		if k == asg {
			return nil, errors.At(in.Entry.Span, "`#[derive_ex(%s)]` can be used only with `impl %s for T`", asg, bin)
		}
		return generator.Single(src.binaryFromAssign()), nil
	}
	if k == bin {
		return src.binaryForms()
	}
	out := generator.NewOutput()
	if in.Requests.Has(bin) {
		// Every form of the binary impl exists, so assign through `&T op rhs`.
		out.Add(src.assignFromBinary(src.rhs, true), src.assignFromBinary("&"+src.rhs, true))
	} else {
		out.Add(src.assignFromBinary(src.rhsOrig, src.thisRef))
	}
	return out, nil
}

// binaryForms emits the owned/borrowed combinations the hand-written impl
// does not cover, each delegating to it.
func (s *source) binaryForms() (*generator.Output, error) {
	out, err := s.output()
	if err != nil {
		return nil, err
	}
	trait, method := s.kind.Path(), s.kind.Method()
	l, r := ref(s.this, s.thisRef), ref(s.rhs, s.rhsRef)
	o := generator.NewOutput()
	for _, fm := range binaryForms {
		if fm.lhs == s.thisRef && fm.rhs == s.rhsRef {
			continue
		}
		implRhs := ref(s.rhs, fm.rhs)
		call := "<" + l + " as " + trait + "<" + r + ">>::" + method + "(" +
			owned("self", s.this, fm.lhs, s.thisRef) + ", " + owned("rhs", s.rhs, fm.rhs, s.rhsRef) + ")"
		o.Add(s.header(trait+"<"+implRhs+">", ref(s.this, fm.lhs),
			&rust.AssocType{Name: "Output", Type: out},
			&rust.Fn{Sig: "fn " + method + "(self, rhs: " + implRhs + ") -> Self::Output", Body: []string{call}},
		))
	}
	return o, nil
}

// assignFromBinary emits `*self = self op rhs` for one right operand type.
// borrowed tells whether the left operand is passed by reference.
func (s *source) assignFromBinary(rhs string, borrowed bool) *rust.Impl {
	bin := s.kind.Binary()
	asg := bin.Assign()
	call := "*self = <" + ref(s.this, borrowed) + " as " + bin.Path() + "<" + rhs + ">>::" + bin.Method() +
		"(" + owned("self", s.this, true, borrowed) + ", rhs);"
	return s.header(asg.Path()+"<"+rhs+">", s.this,
		&rust.Fn{Sig: "fn " + asg.Method() + "(&mut self, rhs: " + rhs + ")", Body: []string{call}},
	)
}

// binaryFromAssign emits `self op rhs` by assigning into an owned copy.
func (s *source) binaryFromAssign() *rust.Impl {
	bin := s.kind.Binary()
	asg := s.kind
	body := []string{
		"<" + s.self + " as " + asg.Path() + "<" + s.rhsOrig + ">>::" + asg.Method() + "(&mut self, rhs);",
		"self",
	}
	return s.header(bin.Path()+"<"+s.rhsOrig+">", s.self,
		&rust.AssocType{Name: "Output", Type: s.self},
		&rust.Fn{Sig: "fn " + bin.Method() + "(mut self, rhs: " + s.rhsOrig + ") -> Self::Output", Body: body},
	)
}
