// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/token"
	"github.com/albertocavalcante/derivex/model"
)

// Slot is one comparison helper attribute, e.g.
// `#[ord(key = $.len(), reverse, bound(...))]`.
type Slot struct {
	Kind Kind

	Key *Template
	By  token.Stream

	Ignore  bool
	Reverse bool
	Bound   *Bounds

	Span        model.Span
	KeySpan     model.Span
	BySpan      model.Span
	IgnoreSpan  model.Span
	ReverseSpan model.Span

	present bool
}

// HasBy reports whether a comparator function was given.
func (s *Slot) HasBy() bool { return s.By != nil }

func (s *Slot) schema() schema {
	sc := schema{
		flags:  []string{"ignore", "skip"},
		values: []string{"key", "by"},
		lists:  []string{"bound"},
	}
	if s.Kind == PartialOrd || s.Kind == Ord {
		sc.flags = append(sc.flags, "reverse")
	}
	return sc
}

func (s *Slot) parse(a *model.Attribute) error {
	s.present = true
	s.Span = a.Span
	ts, o, ok, err := lexArgs(a)
	if err != nil || !ok {
		return err
	}
	args, err := parseArgs(ts, o, s.schema())
	if err != nil {
		return err
	}
	for _, arg := range args {
		span := o.span(arg.pos)
		switch arg.name {
		case "ignore", "skip":
			s.Ignore = true
			s.IgnoreSpan = span
		case "reverse":
			s.Reverse = true
			s.ReverseSpan = span
		case "key":
			s.Key = &Template{expr: arg.value, Span: span}
			s.KeySpan = span
		case "by":
			s.By = arg.value
			s.BySpan = span
		case "bound":
			if s.Bound, err = parseBounds(arg.value, o, arg.pos); err != nil {
				return err
			}
		}
	}
	if s.Key != nil && s.By != nil {
		return errors.At(s.BySpan, "cannot specify both `key = ...` and `by = ...` in `#[%s]`", s.Kind.Snake())
	}
	return nil
}

// override returns the attribute argument that replaces the default
// comparison, as in "key = ...", and its span.
func (s *Slot) override() (string, model.Span, bool) {
	switch {
	case s.Key != nil:
		return "key = ...", s.KeySpan, true
	case s.By != nil:
		return "by = ...", s.BySpan, true
	}
	return "", model.Span{}, false
}

func (s *Slot) verify(target Target, errs *errors.List) {
	if target == TargetField || !s.present {
		return
	}
	switch {
	case s.By != nil:
		errs.Add(errors.At(s.BySpan, "cannot specify `by = ...` for %s", target))
	case s.Key != nil:
		errs.Add(errors.At(s.KeySpan, "cannot specify `key = ...` for %s", target))
	case s.Reverse:
		errs.Add(errors.At(s.ReverseSpan, "cannot specify `reverse` for %s", target))
	case s.Ignore:
		errs.Add(errors.At(s.IgnoreSpan, "cannot specify `ignore` for %s", target))
	}
}

// Compare holds the five comparison slots of one site.
type Compare struct {
	slots [5]Slot
}

func newCompare() Compare {
	var c Compare
	for i := range c.slots {
		c.slots[i].Kind = PartialEq + Kind(i)
	}
	return c
}

// Slot returns the slot for the comparison trait k. Absent attributes
// yield an empty slot.
func (c *Compare) Slot(k Kind) *Slot {
	return &c.slots[compareIndex(k)]
}

// Sites returns the bounds of the slots that affect target, in chain order.
func (c *Compare) Sites(target Kind) []*Bounds {
	var sites []*Bounds
	for _, k := range target.Chain() {
		sites = append(sites, c.Slot(k).Bound)
	}
	return sites
}

func (c *Compare) verify(target Target, errs *errors.List) {
	for _, k := range compareKinds {
		c.Slot(k).verify(target, errs)
	}
}

// Consumes reports which overrides of slot the target trait reads. Hash
// reads `by` only from its own slot, since a comparator says nothing about
// how to hash.
func Consumes(target, slot Kind) (by, key bool) {
	if !slot.Affects(target) {
		return false, false
	}
	if target == Hash && slot != Hash {
		return false, true
	}
	return true, true
}

// Alternatives lists the attributes that give target a custom comparison.
func Alternatives(target Kind) []string {
	var out []string
	for _, k := range target.Chain() {
		by, key := Consumes(target, k)
		if key {
			out = append(out, k.Snake()+"(key = ...)")
		}
		if by {
			out = append(out, k.Snake()+"(by = ...)")
		}
	}
	return out
}

// Conflict returns the first override the target trait cannot honor.
// It is only meaningful once the target's own chain has been checked and
// found empty. Hash slot overrides concern Hash alone.
func (c *Compare) Conflict(target Kind) (bad string, span model.Span, ok bool) {
	for _, k := range compareKinds {
		if k == Hash && target != Hash {
			continue
		}
		if arg, sp, has := c.Slot(k).override(); has {
			return k.Snake() + "(" + arg + ")", sp, true
		}
	}
	return "", model.Span{}, false
}

// ConflictError reports that a field overrides a comparison through bad,
// which target cannot use, so target's default would disagree with it.
func ConflictError(target Kind, bad string, span model.Span) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Since `#[%s]` was specified, the default implementation of `%s` cannot be used.\n", bad, target)
	b.WriteString("One of the following attributes is required.\n\n")
	for _, good := range Alternatives(target) {
		fmt.Fprintf(&b, "#[%s]\n", good)
	}
	return errors.At(span, "%s", b.String())
}

func misplaced(span model.Span, target Kind, bad, good string) error {
	return errors.At(span, "When `#[derive_ex(%s)]` is specified, `#[%s]` must be used instead of `#[%s]`.", target, good, bad)
}

// IsIgnore reports whether the field is excluded from target. Flags on
// weaker traits that target would silently drop are errors.
func (c *Compare) IsIgnore(target Kind) (bool, error) {
	ignored := func(ks ...Kind) bool {
		for _, k := range ks {
			if c.Slot(k).Ignore {
				return true
			}
		}
		return false
	}
	check := func(bad, good Kind) error {
		s := c.Slot(bad)
		if !s.Ignore {
			return nil
		}
		return misplaced(s.IgnoreSpan, target, bad.Snake()+"(ignore)", good.Snake()+"(ignore)")
	}
	var pairs [][2]Kind
	switch target {
	case Ord:
		if ignored(Ord) {
			return true, nil
		}
		pairs = [][2]Kind{{PartialOrd, Ord}, {PartialEq, Ord}, {Eq, Ord}}
	case PartialOrd:
		if ignored(PartialOrd, Ord) {
			return true, nil
		}
		pairs = [][2]Kind{{PartialEq, PartialOrd}, {Eq, Ord}}
	case Eq:
		if ignored(Eq, Ord) {
			return true, nil
		}
		pairs = [][2]Kind{{PartialEq, Eq}, {PartialOrd, Ord}}
	case PartialEq:
		return ignored(PartialEq, Eq, PartialOrd, Ord), nil
	case Hash:
		if ignored(Hash, Eq, Ord) {
			return true, nil
		}
		pairs = [][2]Kind{{PartialEq, Eq}, {PartialOrd, Ord}}
	}
	for _, p := range pairs {
		if err := check(p[0], p[1]); err != nil {
			return false, err
		}
	}
	return false, nil
}

// IsReverse reports whether the field's ordering is reversed for target,
// which must be PartialOrd or Ord.
func (c *Compare) IsReverse(target Kind) (bool, error) {
	switch target {
	case Ord:
		if s := c.Slot(PartialOrd); s.Reverse {
			return false, misplaced(s.ReverseSpan, target, "partial_ord(reverse)", "ord(reverse)")
		}
		return c.Slot(Ord).Reverse, nil
	case PartialOrd:
		return c.Slot(PartialOrd).Reverse || c.Slot(Ord).Reverse, nil
	}
	return false, errors.AssertionFailedf("reverse does not apply to %s", target)
}
