// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Validate checks the structural invariants of every item and reports all
// violations at once.
func (f *File) Validate() error {
	var problems []string
	for i, it := range f.Items {
		where := fmt.Sprintf("items[%d]", i)
		if it.Name != "" {
			where += " " + it.Name
		}
		for _, p := range it.validate() {
			problems = append(problems, where+": "+p)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.Newf("invalid descriptor:\n  %s", strings.Join(problems, "\n  "))
}

func (it *Item) validate() []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	for _, a := range it.Attrs {
		if err := a.validate(); err != nil {
			add("%v", err)
		}
	}
	switch it.Kind {
	case KindStruct, KindEnum:
		if it.Name == "" {
			add("missing name")
		}
		if it.Impl != nil {
			add("%s must not have an impl body", it.Kind)
		}
	case KindImpl:
		if it.Impl == nil {
			add("impl item without impl body")
		} else {
			if it.Impl.Trait == "" {
				add("impl without trait")
			}
			if it.Impl.Self == "" {
				add("impl without self type")
			}
		}
	default:
		add("unknown kind %q (want struct, enum or impl)", it.Kind)
	}
	if it.Kind != KindEnum && len(it.Variants) > 0 {
		add("%s must not have variants", it.Kind)
	}
	if it.Kind == KindEnum && it.Fields.Len() > 0 {
		add("enum must not have fields")
	}
	for _, p := range it.Generics.Params {
		if p.Name == "" {
			add("generic param without name")
		}
		if p.Kind == ParamConst && p.Type == "" {
			add("const param %s without type", p.Name)
		}
	}
	problems = append(problems, it.Fields.validate("")...)
	seen := make(map[string]bool)
	for _, v := range it.Variants {
		if v.Name == "" {
			add("variant without name")
			continue
		}
		if seen[v.Name] {
			add("duplicate variant %s", v.Name)
		}
		seen[v.Name] = true
		for _, a := range v.Attrs {
			if err := a.validate(); err != nil {
				add("variant %s: %v", v.Name, err)
			}
		}
		problems = append(problems, v.Fields.validate("variant "+v.Name+": ")...)
	}
	return problems
}

func (fs Fields) validate(prefix string) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, prefix+fmt.Sprintf(format, args...))
	}
	switch fs.Style {
	case StyleNamed, StyleTuple:
	case StyleUnit:
		if len(fs.List) > 0 {
			add("unit fields must be empty")
		}
	default:
		add("unknown field style %q", fs.Style)
	}
	seen := make(map[string]bool)
	for i, f := range fs.List {
		if f.Type == "" {
			add("field %d without type", i)
		}
		switch fs.Style {
		case StyleNamed:
			if f.Name == "" {
				add("named field %d without name", i)
			} else if seen[f.Name] {
				add("duplicate field %s", f.Name)
			}
			seen[f.Name] = true
		case StyleTuple:
			if f.Name != "" {
				add("tuple field %d must not be named", i)
			}
		}
		for _, a := range f.Attrs {
			if err := a.validate(); err != nil {
				add("field %d: %v", i, err)
			}
		}
	}
	return problems
}
