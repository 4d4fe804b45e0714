// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// Target is the kind of site an attribute is attached to.
type Target int

const (
	TargetType Target = iota
	TargetVariant
	TargetField
)

// String returns the wording used in diagnostics.
func (t Target) String() string {
	switch t {
	case TargetType:
		return "type"
	case TargetVariant:
		return "enum variants"
	}
	return "field"
}

// Consumed tells which helper attributes belong to the requested traits.
// Helper attributes nobody consumes are left alone, so another derive may
// still read them.
type Consumed struct {
	Default bool
	Debug   bool
	Compare bool
}

// ConsumedBy returns the helper attributes consumed by requests for kinds.
func ConsumedBy(kinds []Kind) Consumed {
	var c Consumed
	for _, k := range kinds {
		switch {
		case k == Default:
			c.Default = true
		case k == Debug:
			c.Debug = true
		case k.IsCompare():
			c.Compare = true
		}
	}
	return c
}

// Matches reports whether an attribute with this path is consumed.
// `derive_ex` always is.
func (c Consumed) Matches(path string) bool {
	switch path {
	case DeriveEx:
		return true
	case "default":
		return c.Default
	case "debug":
		return c.Debug
	}
	if c.Compare {
		for _, k := range compareKinds {
			if k.Snake() == path {
				return true
			}
		}
	}
	return false
}

// Strip returns attrs without the consumed attributes.
func (c Consumed) Strip(attrs []*model.Attribute) []*model.Attribute {
	var out []*model.Attribute
	for _, a := range attrs {
		if !c.Matches(a.Path()) {
			out = append(out, a)
		}
	}
	return out
}

// DefaultArgs is `#[default(value, bound(...))]` or a bare `#[default]`.
type DefaultArgs struct {
	// Value is the default expression. It is nil for `_` and for a bare
	// `#[default]`.
	Value token.Stream
	Bound *Bounds

	Span      model.Span
	ValueSpan model.Span
}

// Expr returns the value expression. String literals and constant paths
// are passed through `Into` so `#[default("abc")]` works for a String
// field. ok is false when there is no value.
func (d *DefaultArgs) Expr() (expr string, ok bool) {
	if d == nil || d.Value == nil {
		return "", false
	}
	if token.IsStringLit(d.Value) || token.IsPath(d.Value) && !isPrelude(d.Value) {
		return "::core::convert::Into::into(" + d.Value.String() + ")", true
	}
	return d.Value.String(), true
}

// isPrelude reports whether s is a value whose type `Into` cannot infer.
func isPrelude(s token.Stream) bool {
	if len(s) != 1 {
		return false
	}
	switch s[0].Text {
	case "true", "false", "None":
		return true
	}
	return false
}

// DebugArgs is `#[debug(ignore | skip, transparent, bound(...))]`.
type DebugArgs struct {
	Ignore      bool
	Transparent bool
	Bound       *Bounds

	Span            model.Span
	IgnoreSpan      model.Span
	TransparentSpan model.Span
}

// Helpers is the resolved helper attribute set of one type, variant or
// field.
type Helpers struct {
	Target Target

	// Derive holds the `#[derive_ex(...)]` entries written at this site.
	// On a type they are the requests; elsewhere they only carry bounds.
	Derive *Requests

	Default *DefaultArgs
	Debug   *DebugArgs
	Compare Compare
}

// Sites returns the bound sites of this site for trait k in priority
// order: helper attribute bounds, then the instance and common bounds of
// a `derive_ex` entry naming k.
func (h *Helpers) Sites(k Kind) []*Bounds {
	sites := h.HelperSites(k)
	return append(sites, h.EntrySites(k)...)
}

// HelperSites returns the bounds of the helper attributes that affect k.
func (h *Helpers) HelperSites(k Kind) []*Bounds {
	switch {
	case k == Default && h.Default != nil:
		return []*Bounds{h.Default.Bound}
	case k == Debug && h.Debug != nil:
		return []*Bounds{h.Debug.Bound}
	case k.IsCompare():
		return h.Compare.Sites(k)
	}
	return nil
}

// EntrySites returns the bounds of the `derive_ex` entry for k.
func (h *Helpers) EntrySites(k Kind) []*Bounds {
	e, _ := h.Derive.Get(k)
	return e.Sites()
}

var (
	defaultSchema = schema{lists: []string{"bound"}, unnamed: true}
	debugSchema   = schema{flags: []string{"ignore", "skip", "transparent"}, lists: []string{"bound"}}
)

// Parse resolves the helper attributes of one site. Only attributes in c
// are read. Each attribute is parsed independently and every problem is
// reported. Type-level `#[derive_ex(...)]` attributes are requests and are
// read by ParseRequests instead.
func Parse(attrs []*model.Attribute, target Target, c Consumed) (*Helpers, error) {
	h := &Helpers{Target: target, Derive: NewRequests(), Compare: newCompare()}
	var errs errors.List
	for _, a := range attrs {
		path := a.Path()
		if !c.Matches(path) {
			continue
		}
		switch path {
		case DeriveEx:
			if target != TargetType {
				errs.Add(h.Derive.addAttr(a))
			}
		case "default":
			if h.Default != nil {
				errs.Add(twice(a))
				continue
			}
			d, err := parseDefault(a)
			errs.Add(err)
			h.Default = d
		case "debug":
			if h.Debug != nil {
				errs.Add(twice(a))
				continue
			}
			d, err := parseDebug(a)
			errs.Add(err)
			h.Debug = d
		default:
			k, _ := compareKind(path)
			slot := h.Compare.Slot(k)
			if slot.present {
				errs.Add(twice(a))
				continue
			}
			errs.Add(slot.parse(a))
		}
	}
	if errs.Len() == 0 {
		h.verify(&errs)
	}
	return h, errs.Err()
}

func twice(a *model.Attribute) error {
	return errors.At(a.Span, "#[%s] was specified twice", a.Path())
}

func compareKind(path string) (Kind, bool) {
	for _, k := range compareKinds {
		if k.Snake() == path {
			return k, true
		}
	}
	return 0, false
}

func parseDefault(a *model.Attribute) (*DefaultArgs, error) {
	d := &DefaultArgs{Span: a.Span}
	s, o, ok, err := lexArgs(a)
	if err != nil || !ok {
		return d, err
	}
	args, err := parseArgs(s, o, defaultSchema)
	if err != nil {
		return d, err
	}
	for _, arg := range args {
		switch arg.kind {
		case argUnnamed:
			d.ValueSpan = o.span(arg.pos)
			if len(arg.value) == 1 && arg.value[0].IsIdent("_") {
				continue
			}
			d.Value = arg.value
		case argList:
			if d.Bound, err = parseBounds(arg.value, o, arg.pos); err != nil {
				return d, err
			}
		}
	}
	return d, nil
}

func parseDebug(a *model.Attribute) (*DebugArgs, error) {
	d := &DebugArgs{Span: a.Span}
	s, o, ok, err := lexArgs(a)
	if err != nil || !ok {
		return d, err
	}
	args, err := parseArgs(s, o, debugSchema)
	if err != nil {
		return d, err
	}
	for _, arg := range args {
		switch arg.name {
		case "ignore", "skip":
			d.Ignore = true
			d.IgnoreSpan = o.span(arg.pos)
		case "transparent":
			d.Transparent = true
			d.TransparentSpan = o.span(arg.pos)
		case "bound":
			if d.Bound, err = parseBounds(arg.value, o, arg.pos); err != nil {
				return d, err
			}
		}
	}
	return d, nil
}

// verify rejects modifiers that only make sense on fields.
func (h *Helpers) verify(errs *errors.List) {
	if h.Target == TargetField {
		return
	}
	if d := h.Debug; d != nil {
		if d.Ignore {
			errs.Add(errors.At(d.IgnoreSpan, "cannot specify `ignore` for %s", h.Target))
		}
		if d.Transparent {
			errs.Add(errors.At(d.TransparentSpan, "cannot specify `transparent` for %s", h.Target))
		}
	}
	if d := h.Default; d != nil && d.Value != nil && h.Target == TargetVariant {
		errs.Add(errors.At(d.ValueSpan, "`#[default(...)]` on a variant cannot specify a default value"))
	}
	h.Compare.verify(h.Target, errs)
}
