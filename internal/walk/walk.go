// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package walk pairs the fields and variants of an item with their helper
// attributes, in declaration order.
package walk

import (
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/names"
	"github.com/albertocavalcante/derivex/model"
)

// Item is a struct or enum with its resolved helper attributes.
type Item struct {
	Src      *model.Item
	Helpers  *attr.Helpers
	Requests *attr.Requests
	Consumed attr.Consumed

	// Fields is set for structs, Variants for enums.
	Fields   []*Field
	Variants []*Variant
}

// Variant is one enum variant.
type Variant struct {
	Src     *model.Variant
	Index   int
	Helpers *attr.Helpers
	Fields  []*Field
}

// Field is one field of a struct or variant.
type Field struct {
	Src     *model.Field
	Index   int
	Helpers *attr.Helpers
}

// Name returns the variant name.
func (v *Variant) Name() string { return v.Src.Name }

// Style returns the variant's constructor shape.
func (v *Variant) Style() model.FieldStyle { return v.Src.Fields.Style }

// Type returns the field type as written.
func (f *Field) Type() string { return f.Src.Type }

// Member returns the access member: the name, or the tuple index.
func (f *Field) Member() string { return names.Member(f.Src.Name, f.Index) }

// Binding returns a pattern binding for the field, e.g. "_self_a".
func (f *Field) Binding(prefix string) string {
	return names.Binding(prefix, f.Src.Name, f.Index)
}

// IsNamed reports whether the field has a name.
func (f *Field) IsNamed() bool { return f.Src.Name != "" }

// New walks a struct or enum. Type-level `#[derive_ex(...)]` attributes
// become the requests; every other consumed attribute is resolved per site.
// Problems at independent sites are all reported.
func New(it *model.Item) (*Item, error) {
	if it.IsImpl() {
		return nil, errors.AssertionFailedf("walk: %s is an impl block", it.Name)
	}
	var errs errors.List
	reqs, err := attr.ParseRequests(it.Attrs)
	errs.Add(err)
	c := attr.ConsumedBy(reqs.Kinds())

	w := &Item{Src: it, Requests: reqs, Consumed: c}
	w.Helpers, err = attr.Parse(it.Attrs, attr.TargetType, c)
	errs.Add(err)
	w.Helpers.Derive = reqs

	if it.IsEnum() {
		for i, v := range it.Variants {
			wv := &Variant{Src: v, Index: i}
			wv.Helpers, err = attr.Parse(v.Attrs, attr.TargetVariant, c)
			errs.Add(err)
			wv.Fields = fields(v.Fields, c, &errs)
			w.Variants = append(w.Variants, wv)
		}
	} else {
		w.Fields = fields(it.Fields, c, &errs)
	}
	return w, errs.Err()
}

func fields(fs model.Fields, c attr.Consumed, errs *errors.List) []*Field {
	out := make([]*Field, 0, len(fs.List))
	for i, f := range fs.List {
		h, err := attr.Parse(f.Attrs, attr.TargetField, c)
		errs.Add(err)
		out = append(out, &Field{Src: f, Index: i, Helpers: h})
	}
	return out
}

// Strip returns a copy of it without the attributes consumed by c, on the
// item, its variants and its fields. Everything else is untouched.
func Strip(it *model.Item, c attr.Consumed) *model.Item {
	cp := *it
	cp.Attrs = c.Strip(it.Attrs)
	cp.Fields = stripFields(it.Fields, c)
	if it.Variants != nil {
		cp.Variants = make([]*model.Variant, len(it.Variants))
		for i, v := range it.Variants {
			vc := *v
			vc.Attrs = c.Strip(v.Attrs)
			vc.Fields = stripFields(v.Fields, c)
			cp.Variants[i] = &vc
		}
	}
	return &cp
}

func stripFields(fs model.Fields, c attr.Consumed) model.Fields {
	out := model.Fields{Style: fs.Style}
	if fs.List == nil {
		return out
	}
	out.List = make([]*model.Field, len(fs.List))
	for i, f := range fs.List {
		fc := *f
		fc.Attrs = c.Strip(f.Attrs)
		out.List[i] = &fc
	}
	return out
}
