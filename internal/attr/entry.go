// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// DeriveEx is the path of the request attribute.
const DeriveEx = "derive_ex"

// Entry is one trait named in a `#[derive_ex(...)]` attribute.
type Entry struct {
	Kind Kind
	Span model.Span

	// Dump asks for the generated code as a diagnostic.
	Dump bool

	// This is the trait's own `bound(...)`; Common is the attribute-wide
	// one shared by every trait of the attribute.
	This   *Bounds
	Common *Bounds
}

// Sites returns the entry's bound sites, instance before common.
func (e *Entry) Sites() []*Bounds {
	if e == nil {
		return nil
	}
	return []*Bounds{e.This, e.Common}
}

var traitSchema = schema{flags: []string{"dump"}, lists: []string{"bound"}}

// ParseDerive parses `#[derive_ex(T1, T2(bound(...), dump), bound(...), dump)]`.
func ParseDerive(a *model.Attribute) ([]*Entry, error) {
	s, o, ok, err := lexArgs(a)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.At(a.Span, "expected `#[%s(...)]`", DeriveEx)
	}
	var (
		entries []*Entry
		common  *Bounds
		dump    bool
	)
	for _, piece := range splitArgs(s) {
		if len(piece) == 0 {
			return nil, errors.At(a.Span, "unexpected `,`")
		}
		first := piece[0]
		if first.Kind != token.Ident || len(piece) > 2 || len(piece) == 2 && !piece[1].IsGroup('(') {
			return nil, errors.At(o.span(first.Pos), "expected trait name, found `%s`", piece)
		}
		switch {
		case first.Text == "dump" && len(piece) == 1:
			dump = true
			continue
		case first.Text == "bound" && len(piece) == 2:
			if common != nil {
				return nil, errors.At(o.span(first.Pos), "parameter `bound` specified more than once")
			}
			if common, err = parseBounds(piece[1].Inner, o, first.Pos); err != nil {
				return nil, err
			}
			continue
		}
		k, known := ParseKind(first.Text)
		if !known {
			return nil, errors.At(o.span(first.Pos), "unsupported trait `%s`", first.Text)
		}
		e := &Entry{Kind: k, Span: o.span(first.Pos)}
		if len(piece) == 2 {
			args, err := parseArgs(piece[1].Inner, o, traitSchema)
			if err != nil {
				return nil, err
			}
			for _, arg := range args {
				switch arg.name {
				case "dump":
					e.Dump = true
				case "bound":
					if e.This, err = parseBounds(arg.value, o, arg.pos); err != nil {
						return nil, err
					}
				}
			}
		}
		entries = append(entries, e)
	}
	for _, e := range entries {
		e.Dump = e.Dump || dump
		e.Common = common
	}
	return entries, nil
}

// ParseRequests collects the requests of every `#[derive_ex(...)]` in
// attrs. Each attribute is parsed independently.
func ParseRequests(attrs []*model.Attribute) (*Requests, error) {
	r := NewRequests()
	var errs errors.List
	for _, a := range attrs {
		if a.Path() == DeriveEx {
			errs.Add(r.addAttr(a))
		}
	}
	return r, errs.Err()
}

func (r *Requests) addAttr(a *model.Attribute) error {
	entries, err := ParseDerive(a)
	if err != nil {
		return err
	}
	var errs errors.List
	for _, e := range entries {
		errs.Add(r.Add(e))
	}
	return errs.Err()
}

// merge folds a second request for the same trait into e.
func (e *Entry) merge(other *Entry) error {
	this, err := mergeBounds(e.Kind, e.This, other.This)
	if err != nil {
		return err
	}
	common, err := mergeBounds(e.Kind, e.Common, other.Common)
	if err != nil {
		return err
	}
	e.Dump = e.Dump || other.Dump
	e.This, e.Common = this, common
	return nil
}

// Requests is the set of traits requested for one site, iterated in
// emission order regardless of the order they were written in.
type Requests struct {
	m *treemap.Map
}

// NewRequests returns an empty request set.
func NewRequests() *Requests {
	return &Requests{m: treemap.NewWith(utils.IntComparator)}
}

// Add records e. A second request for the same trait is merged into the
// first: dump flags are OR'd and at most one of them may carry bounds.
func (r *Requests) Add(e *Entry) error {
	if v, ok := r.m.Get(int(e.Kind)); ok {
		prev := v.(*Entry)
		return prev.merge(e)
	}
	cp := *e
	r.m.Put(int(e.Kind), &cp)
	return nil
}

// Get returns the request for k.
func (r *Requests) Get(k Kind) (*Entry, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.m.Get(int(k))
	if !ok {
		return nil, false
	}
	return v.(*Entry), true
}

// Has reports whether k was requested.
func (r *Requests) Has(k Kind) bool {
	_, ok := r.Get(k)
	return ok
}

// Entries returns the requests in emission order.
func (r *Requests) Entries() []*Entry {
	if r == nil {
		return nil
	}
	vs := r.m.Values()
	out := make([]*Entry, len(vs))
	for i, v := range vs {
		out[i] = v.(*Entry)
	}
	return out
}

// Kinds returns the requested kinds in emission order.
func (r *Requests) Kinds() []Kind {
	es := r.Entries()
	ks := make([]Kind, len(es))
	for i, e := range es {
		ks[i] = e.Kind
	}
	return ks
}

// Len returns the number of distinct requested traits.
func (r *Requests) Len() int {
	if r == nil {
		return 0
	}
	return r.m.Size()
}
