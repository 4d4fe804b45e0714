// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rust holds the generated Rust items and prints them.
//
// Nodes are deliberately shallow: expressions and statements are kept as
// source text, and only the item structure (impl blocks, methods,
// associated types, const blocks) is modeled, since that is what the
// printer has to lay out.
package rust

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/names"
)

// Node is an item or impl member that can be printed.
type Node interface {
	Render(w *Writer)
}

// Impl is a trait impl block.
type Impl struct {
	Attrs []string

	// Params are the impl generic parameter declarations.
	Params []string
	Trait  string
	Self   string
	Where  []string
	Items  []Node
}

// Render implements Node.
func (im *Impl) Render(w *Writer) {
	w.Lines(im.Attrs...)
	head := "impl" + Generics(im.Params) + " " + im.Trait + " for " + im.Self
	block(w, head, im.Where, im.Items)
}

func block(w *Writer, head string, where []string, items []Node) {
	if len(where) > 0 {
		w.Line(head)
		writeWhere(w, where)
		head = ""
	} else {
		head += " "
	}
	if len(items) == 0 {
		w.Line(head + "{}")
		return
	}
	w.Line(head + "{")
	for _, it := range items {
		it.Render(w)
	}
	w.Line("}")
}

func writeWhere(w *Writer, where []string) {
	w.Line("where")
	w.Indent()
	for _, p := range where {
		w.Line(p + ",")
	}
	w.Dedent()
}

// Generics renders a generic parameter list, or nothing when empty.
func Generics(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

// Fn is a method.
type Fn struct {
	Attrs []string

	// Sig is the signature up to the body, e.g.
	// "fn clone(&self) -> Self".
	Sig   string
	Where []string

	// Body holds the body lines; nested blocks are laid out by the writer.
	Body []string
}

// Render implements Node.
func (f *Fn) Render(w *Writer) {
	w.Lines(f.Attrs...)
	if len(f.Where) > 0 {
		w.Line(f.Sig)
		writeWhere(w, f.Where)
		if len(f.Body) == 0 {
			w.Line("{}")
			return
		}
		w.Line("{")
	} else {
		if len(f.Body) == 0 {
			w.Line(f.Sig + " {}")
			return
		}
		w.Line(f.Sig + " {")
	}
	w.Lines(f.Body...)
	w.Line("}")
}

// AssocType is `type Name = Type;`.
type AssocType struct {
	Name string
	Type string
}

// Render implements Node.
func (a *AssocType) Render(w *Writer) {
	w.Linef("type %s = %s;", a.Name, a.Type)
}

// ConstBlock is `const _: () = { ... };`, used for compile-time checks
// that must not leak names into the surrounding scope.
type ConstBlock struct {
	Items []Node
}

// Render implements Node.
func (c *ConstBlock) Render(w *Writer) {
	w.Line("const _: () = {")
	for _, it := range c.Items {
		it.Render(w)
	}
	w.Line("};")
}

// CompileError is `::core::compile_error!("...");`.
type CompileError struct {
	Message string
}

// Render implements Node.
func (e *CompileError) Render(w *Writer) {
	w.Linef("::core::compile_error!(%s);", names.Quote(e.Message))
}

// Raw is pre-rendered source, printed line by line.
type Raw struct {
	Lines []string

	// Verbatim keeps the lines as written: only the current indentation
	// is prepended.
	Verbatim bool
}

// Render implements Node.
func (r *Raw) Render(w *Writer) {
	if r.Verbatim {
		w.Text(r.Lines...)
		return
	}
	w.Lines(r.Lines...)
}

// Print renders nodes as top-level items separated by blank lines.
func Print(nodes ...Node) []byte {
	var w Writer
	for i, n := range nodes {
		if i > 0 {
			w.Line("")
		}
		n.Render(&w)
	}
	return w.Bytes()
}
