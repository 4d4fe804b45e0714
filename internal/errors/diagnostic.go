// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/derivex/model"
)

// Diagnostic is a compiler-style error: a message anchored at a span.
type Diagnostic struct {
	Span    model.Span
	Message string
}

func (d *Diagnostic) Error() string { return d.Message }

// At returns a Diagnostic at span.
func At(span model.Span, format string, args ...any) error {
	return &Diagnostic{Span: span, Message: fmt.Sprintf(format, args...)}
}

// List collects independent errors.
type List struct {
	errs []error
}

// Add appends err. Nil errors are ignored and nested lists are flattened.
func (l *List) Add(err error) {
	if err == nil {
		return
	}
	if m, ok := err.(*multi); ok {
		l.errs = append(l.errs, m.errs...)
		return
	}
	l.errs = append(l.errs, err)
}

// Len returns the number of collected errors.
func (l *List) Len() int { return len(l.errs) }

// Err returns nil, the only error, or an error wrapping all of them.
func (l *List) Err() error {
	switch len(l.errs) {
	case 0:
		return nil
	case 1:
		return l.errs[0]
	}
	return &multi{errs: append([]error(nil), l.errs...)}
}

type multi struct {
	errs []error
}

func (m *multi) Error() string {
	msgs := make([]string, len(m.errs))
	for i, err := range m.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (m *multi) Unwrap() []error { return m.errs }

// Diagnostics flattens err into diagnostics. Hints attached with WithHint are
// appended to the message on their own lines; errors that are not
// diagnostics get an unknown span.
func Diagnostics(err error) []*Diagnostic {
	if err == nil {
		return nil
	}
	if m, ok := err.(*multi); ok {
		var ds []*Diagnostic
		for _, e := range m.errs {
			ds = append(ds, Diagnostics(e)...)
		}
		return ds
	}
	d := &Diagnostic{Message: err.Error()}
	var target *Diagnostic
	if As(err, &target) {
		d.Span = target.Span
		d.Message = target.Message
	}
	for _, h := range GetAllHints(err) {
		d.Message += "\n" + h
	}
	return []*Diagnostic{d}
}
