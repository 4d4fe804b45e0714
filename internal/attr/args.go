// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// origin maps token offsets back to source positions.
type origin struct {
	attr   *model.Attribute
	offset int
}

// span returns the position of byte pos of the lexed argument text.
// A negative pos is the attribute itself.
func (o origin) span(pos int) model.Span {
	if o.attr == nil {
		return model.Span{}
	}
	if pos < 0 {
		return o.attr.Span
	}
	end := o.offset + pos
	if end > len(o.attr.Text) {
		end = len(o.attr.Text)
	}
	return o.attr.Span.Advance(o.attr.Text[:end])
}

// lexArgs lexes the parenthesized arguments of a.
// ok is false when a has no argument list.
func lexArgs(a *model.Attribute) (s token.Stream, o origin, ok bool, err error) {
	text, offset, ok := a.Args()
	o = origin{attr: a, offset: offset}
	if !ok {
		return nil, o, false, nil
	}
	s, err = token.Lex(text)
	if err != nil {
		var se *token.SyntaxError
		if errors.As(err, &se) {
			return nil, o, true, errors.At(o.span(se.Offset), "malformed attribute: %s", se.Msg)
		}
		return nil, o, true, err
	}
	return s, o, true, nil
}

type argKind int

const (
	argFlag    argKind = iota // name
	argValue                  // name = value
	argList                   // name(...)
	argUnnamed                // expression
)

// arg is one comma-separated argument.
type arg struct {
	kind  argKind
	name  string
	value token.Stream // argValue: after '='; argList: inside the parens; argUnnamed: everything
	pos   int
}

// schema names the arguments an attribute accepts.
type schema struct {
	flags   []string
	values  []string
	lists   []string
	unnamed bool
}

func (sc schema) has(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

func (sc schema) expected() string {
	var parts []string
	for _, n := range sc.lists {
		parts = append(parts, "`"+n+"(...)`")
	}
	for _, n := range sc.values {
		parts = append(parts, "`"+n+" = ...`")
	}
	for _, n := range sc.flags {
		parts = append(parts, "`"+n+"`")
	}
	return strings.Join(parts, ", ")
}

// parseArgs splits s into arguments and classifies each against sc.
// Named arguments may appear at most once.
func parseArgs(s token.Stream, o origin, sc schema) ([]arg, error) {
	var args []arg
	seen := map[string]bool{}
	unnamed := false
	for _, piece := range splitArgs(s) {
		if len(piece) == 0 {
			return nil, errors.At(o.span(-1), "unexpected `,`")
		}
		a, err := classify(piece, o, sc)
		if err != nil {
			return nil, err
		}
		if a.kind == argUnnamed {
			if unnamed {
				return nil, errors.At(o.span(a.pos), "unexpected argument `%s`", piece)
			}
			unnamed = true
		} else {
			if seen[a.name] {
				return nil, errors.At(o.span(a.pos), "parameter `%s` specified more than once", a.name)
			}
			seen[a.name] = true
		}
		args = append(args, a)
	}
	return args, nil
}

func classify(piece token.Stream, o origin, sc schema) (arg, error) {
	first := piece[0]
	pos := first.Pos
	if first.Kind == token.Ident {
		name := first.Text
		switch {
		case len(piece) == 1 && sc.has(sc.flags, name):
			return arg{kind: argFlag, name: name, pos: pos}, nil
		case len(piece) >= 2 && piece[1].IsPunct('=') && !piece[1].Joint:
			if !sc.has(sc.values, name) {
				return arg{}, unknownArg(o, pos, name, sc)
			}
			if len(piece) == 2 {
				return arg{}, errors.At(o.span(piece[1].Pos), "expected expression after `%s =`", name)
			}
			return arg{kind: argValue, name: name, value: piece[2:], pos: pos}, nil
		case len(piece) == 2 && piece[1].IsGroup('(') && sc.has(sc.lists, name):
			return arg{kind: argList, name: name, value: piece[1].Inner, pos: pos}, nil
		case len(piece) == 1 && !sc.unnamed:
			return arg{}, unknownArg(o, pos, name, sc)
		case len(piece) == 2 && piece[1].IsGroup('(') && !sc.unnamed:
			return arg{}, unknownArg(o, pos, name, sc)
		}
	}
	if !sc.unnamed {
		return arg{}, errors.WithHintf(
			errors.At(o.span(pos), "unexpected argument `%s`", piece),
			"expected one of: %s", sc.expected())
	}
	return arg{kind: argUnnamed, value: piece, pos: pos}, nil
}

func unknownArg(o origin, pos int, name string, sc schema) error {
	return errors.WithHintf(
		errors.At(o.span(pos), "unknown parameter `%s`", name),
		"expected one of: %s", sc.expected())
}

// splitArgs cuts s at top-level commas. Commas between the pipes of a
// closure parameter list, as in `by = |a, b| a.cmp(b)`, and inside
// turbofish arguments, as in `key = f::<A, B>($)`, do not split.
func splitArgs(s token.Stream) []token.Stream {
	var out []token.Stream
	start := 0
	exprStart := true
	angle := 0
	for i := 0; i < len(s); i++ {
		t := s[i]
		if exprStart && t.IsPunct('|') && !(t.Joint && i+1 < len(s) && s[i+1].IsPunct('|')) {
			j := i + 1
			for j < len(s) && !s[j].IsPunct('|') {
				j++
			}
			i = j
			exprStart = false
			continue
		}
		switch {
		case t.IsPunct('<') && (angle > 0 || turbofish(s, i)):
			angle++
		case t.IsPunct('>') && angle > 0 && !(s[i-1].IsPunct('-') && s[i-1].Joint):
			angle--
		case t.IsPunct(',') && angle == 0:
			out = append(out, s[start:i])
			start = i + 1
			exprStart = true
			continue
		case t.IsPunct('=') && !t.Joint && !(i > 0 && s[i-1].Joint && s[i-1].Kind == token.Punct):
			exprStart = true
			continue
		case t.IsIdent("move"):
			continue
		}
		exprStart = false
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// turbofish reports whether the `<` at i follows `::`.
func turbofish(s token.Stream, i int) bool {
	return i >= 2 && s[i-1].IsPunct(':') && s[i-2].IsPunct(':') && s[i-2].Joint
}
