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

// Bounds is the `bound(...)` argument of one attribute site.
//
// A nil *Bounds means the site said nothing and resolution falls through to
// the next site. A Bounds with no items and Continue unset is an explicit
// empty bound: `bound()`.
type Bounds struct {
	Items []BoundItem

	// Continue is set by a `..` item: the site adds its items and lets
	// lower sites contribute too.
	Continue bool

	Span model.Span
}

// BoundItem is one entry of a bound list.
type BoundItem struct {
	// Text is the predicate, e.g. "T : Copy", or the type, e.g. "Vec<T>".
	Text string

	// Pred is set for a full where predicate. Otherwise Text is a type the
	// derived trait is required of.
	Pred bool
}

// IsEmpty reports whether b is an explicit empty bound.
func (b *Bounds) IsEmpty() bool {
	return b != nil && len(b.Items) == 0 && !b.Continue
}

// String renders b in attribute syntax.
func (b *Bounds) String() string {
	if b == nil {
		return "<inherit>"
	}
	parts := make([]string, 0, len(b.Items)+1)
	for _, it := range b.Items {
		parts = append(parts, it.Text)
	}
	if b.Continue {
		parts = append(parts, "..")
	}
	return "bound(" + strings.Join(parts, ", ") + ")"
}

// parseBounds parses the contents of `bound(...)`.
func parseBounds(s token.Stream, o origin, pos int) (*Bounds, error) {
	b := &Bounds{Span: o.span(pos)}
	for _, piece := range token.Split(s, ',', true) {
		switch {
		case len(piece) == 0:
			return nil, errors.At(o.span(pos), "unexpected `,` in `bound(...)`")
		case token.IsDotDot(piece):
			b.Continue = true
		case token.IndexColon(piece) >= 0:
			i := token.IndexColon(piece)
			if i == 0 || i == len(piece)-1 {
				return nil, errors.At(o.span(piece.Pos()), "malformed bound `%s`", piece)
			}
			b.Items = append(b.Items, BoundItem{Text: piece.String(), Pred: true})
		default:
			b.Items = append(b.Items, BoundItem{Text: piece.String()})
		}
	}
	return b, nil
}

// mergeBounds combines the bounds of two requests for the same trait.
// At most one of them may be set.
func mergeBounds(k Kind, a, b *Bounds) (*Bounds, error) {
	switch {
	case a == b, b == nil:
		return a, nil
	case a == nil:
		return b, nil
	}
	return nil, errors.At(b.Span, "`bound(...)` for `%s` is specified more than once", k)
}
