// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import (
	"strings"

	"github.com/albertocavalcante/derivex/model"
)

// Item renders a descriptor back to source: the declaration the generated
// impls are spliced next to.
func Item(it *model.Item) Node {
	var w Writer
	switch it.Kind {
	case model.KindEnum:
		writeEnum(&w, it)
	case model.KindImpl:
		writeImpl(&w, it)
	default:
		writeStruct(&w, it)
	}
	return &Raw{Lines: strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n"), Verbatim: true}
}

func attrs(list []*model.Attribute) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Text
	}
	return out
}

func vis(v string) string {
	if v == "" {
		return ""
	}
	return v + " "
}

func declParams(g model.Generics) string {
	ps := make([]string, len(g.Params))
	for i, p := range g.Params {
		ps[i] = p.Source()
	}
	return Generics(ps)
}

func writeStruct(w *Writer, it *model.Item) {
	w.Lines(attrs(it.Attrs)...)
	head := vis(it.Vis) + "struct " + it.Name + declParams(it.Generics)
	switch it.Fields.Style {
	case model.StyleNamed:
		if len(it.Generics.Where) > 0 {
			w.Line(head)
			writeWhere(w, it.Generics.Where)
			w.Line("{")
		} else {
			w.Line(head + " {")
		}
		for _, f := range it.Fields.List {
			w.Lines(attrs(f.Attrs)...)
			w.Linef("%s%s: %s,", vis(f.Vis), f.Name, f.Type)
		}
		w.Line("}")
	case model.StyleTuple:
		head += "(" + tupleFields(it.Fields) + ")"
		if len(it.Generics.Where) > 0 {
			w.Line(head)
			writeWhere(w, it.Generics.Where)
			w.Line(";")
			return
		}
		w.Line(head + ";")
	default:
		if len(it.Generics.Where) > 0 {
			w.Line(head)
			writeWhere(w, it.Generics.Where)
			w.Line(";")
			return
		}
		w.Line(head + ";")
	}
}

func tupleFields(fs model.Fields) string {
	parts := make([]string, len(fs.List))
	for i, f := range fs.List {
		var b strings.Builder
		for _, a := range f.Attrs {
			b.WriteString(a.Text + " ")
		}
		b.WriteString(vis(f.Vis) + f.Type)
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func inlineNamed(fs model.Fields) string {
	parts := make([]string, len(fs.List))
	for i, f := range fs.List {
		var b strings.Builder
		for _, a := range f.Attrs {
			b.WriteString(a.Text + " ")
		}
		b.WriteString(f.Name + ": " + f.Type)
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func writeEnum(w *Writer, it *model.Item) {
	w.Lines(attrs(it.Attrs)...)
	head := vis(it.Vis) + "enum " + it.Name + declParams(it.Generics)
	if len(it.Generics.Where) > 0 {
		w.Line(head)
		writeWhere(w, it.Generics.Where)
		head = ""
	} else {
		head += " "
	}
	if len(it.Variants) == 0 {
		w.Line(head + "{}")
		return
	}
	w.Line(head + "{")
	for _, v := range it.Variants {
		w.Lines(attrs(v.Attrs)...)
		line := v.Name
		switch v.Fields.Style {
		case model.StyleNamed:
			line += " { " + inlineNamed(v.Fields) + " }"
		case model.StyleTuple:
			line += "(" + tupleFields(v.Fields) + ")"
		}
		if v.Discriminant != "" {
			line += " = " + v.Discriminant
		}
		w.Line(line + ",")
	}
	w.Line("}")
}

func writeImpl(w *Writer, it *model.Item) {
	im := it.Impl
	w.Lines(attrs(it.Attrs)...)
	ps := make([]string, len(im.Generics.Params))
	for i, p := range im.Generics.Params {
		ps[i] = p.Decl()
	}
	trait := im.Trait
	if im.Negative {
		trait = "!" + trait
	}
	items := make([]Node, len(im.Items))
	for i, a := range im.Items {
		items[i] = &Raw{Lines: strings.Split(a.Source(), "\n"), Verbatim: true}
	}
	block(w, "impl"+Generics(ps)+" "+trait+" for "+im.Self, im.Generics.Where, items)
}
