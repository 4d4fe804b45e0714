// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// Template is a key expression in which `$` stands for the field value.
type Template struct {
	expr token.Stream
	Span model.Span
}

// NewTemplate returns a template over the expression text src.
func NewTemplate(src string) (*Template, error) {
	s, err := token.Lex(src)
	if err != nil {
		return nil, err
	}
	return &Template{expr: s}, nil
}

// Apply substitutes value for every `$`, at any depth.
func (t *Template) Apply(value string) string {
	isDollar := func(tk token.Token) bool { return tk.IsPunct('$') }
	return token.Replace(t.expr, isDollar, token.Stream{token.NewRaw(value)}).String()
}

func (t *Template) String() string { return t.expr.String() }
