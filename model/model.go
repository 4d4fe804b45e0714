// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the structural descriptors derivex consumes.
//
// A descriptor document lists items as a host parser would hand them over:
// structs and enums with their generics, fields, variants and attributes, and
// trait impl blocks with their associated items. Type and expression text is
// kept verbatim; the token layer interprets it on demand.
//
// Documents can be written as JSON, YAML or TOML and share one schema.
package model

import "strings"

// File is one descriptor document.
type File struct {
	// Items are the annotated items in declaration order.
	Items []*Item `json:"items" yaml:"items" toml:"items"`
}

// ItemKind identifies the shape of an Item.
type ItemKind string

const (
	KindStruct ItemKind = "struct"
	KindEnum   ItemKind = "enum"
	KindImpl   ItemKind = "impl"
)

// Item is a struct, an enum, or a trait impl block.
type Item struct {
	// Kind is "struct", "enum" or "impl".
	Kind ItemKind `json:"kind" yaml:"kind" toml:"kind"`

	// Name is the type name. Empty for impl items.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Vis is the visibility as written ("pub", "pub(crate)", or empty).
	Vis string `json:"vis,omitempty" yaml:"vis,omitempty" toml:"vis,omitempty"`

	// Attrs are the outer attributes in source order.
	Attrs []*Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`

	// Generics holds the generic parameter list and where clause.
	Generics Generics `json:"generics,omitzero" yaml:"generics,omitempty" toml:"generics,omitempty"`

	// Fields are the struct fields. Unused for enums and impls.
	Fields Fields `json:"fields,omitzero" yaml:"fields,omitempty" toml:"fields,omitempty"`

	// Variants are the enum variants in declaration order.
	Variants []*Variant `json:"variants,omitempty" yaml:"variants,omitempty" toml:"variants,omitempty"`

	// Impl is the impl block for impl items.
	Impl *Impl `json:"impl,omitempty" yaml:"impl,omitempty" toml:"impl,omitempty"`

	Span Span `json:"span,omitzero" yaml:"span,omitempty" toml:"span,omitempty"`
}

// IsEnum reports whether the item is an enum.
func (it *Item) IsEnum() bool { return it.Kind == KindEnum }

// IsImpl reports whether the item is an impl block.
func (it *Item) IsImpl() bool { return it.Kind == KindImpl }

// FieldStyle is the constructor shape of a struct or variant.
type FieldStyle string

const (
	StyleNamed FieldStyle = "named"
	StyleTuple FieldStyle = "tuple"
	StyleUnit  FieldStyle = "unit"
)

// Fields is an ordered field list together with its constructor shape.
type Fields struct {
	Style FieldStyle `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	List  []*Field   `json:"list,omitempty" yaml:"list,omitempty" toml:"list,omitempty"`
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f.List) }

// Field is one struct or variant field.
type Field struct {
	Attrs []*Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
	Vis   string       `json:"vis,omitempty" yaml:"vis,omitempty" toml:"vis,omitempty"`

	// Name is empty for tuple fields.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Type is the field type as written, e.g. "Option<T>".
	Type string `json:"type" yaml:"type" toml:"type"`

	Span Span `json:"span,omitzero" yaml:"span,omitempty" toml:"span,omitempty"`
}

// Variant is one enum variant.
type Variant struct {
	Attrs  []*Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
	Name   string       `json:"name" yaml:"name" toml:"name"`
	Fields Fields       `json:"fields,omitzero" yaml:"fields,omitempty" toml:"fields,omitempty"`

	// Discriminant is the explicit discriminant expression, if any.
	Discriminant string `json:"discriminant,omitempty" yaml:"discriminant,omitempty" toml:"discriminant,omitempty"`

	Span Span `json:"span,omitzero" yaml:"span,omitempty" toml:"span,omitempty"`
}

// ParamKind is the kind of a generic parameter.
type ParamKind string

const (
	ParamType     ParamKind = "type"
	ParamLifetime ParamKind = "lifetime"
	ParamConst    ParamKind = "const"
)

// Generics is a generic parameter list plus its where clause.
type Generics struct {
	Params []*GenericParam `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`

	// Where holds the where predicates verbatim, e.g. "Self: MyTrait".
	Where []string `json:"where,omitempty" yaml:"where,omitempty" toml:"where,omitempty"`
}

// IsEmpty reports whether there are no params and no predicates.
func (g Generics) IsEmpty() bool { return len(g.Params) == 0 && len(g.Where) == 0 }

// Names returns the names of type and const params, the names an
// auto-bound looks for inside field types.
func (g Generics) Names() []string {
	var names []string
	for _, p := range g.Params {
		if p.Kind != ParamLifetime {
			names = append(names, p.Name)
		}
	}
	return names
}

// GenericParam is one generic parameter.
type GenericParam struct {
	// Kind defaults to "type", or "lifetime" when Name starts with a quote.
	Kind ParamKind `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`

	Name string `json:"name" yaml:"name" toml:"name"`

	// Bounds is the inline bound list, e.g. "Copy + Debug" or "'b".
	Bounds string `json:"bounds,omitempty" yaml:"bounds,omitempty" toml:"bounds,omitempty"`

	// Default is the default type or const value.
	Default string `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`

	// Type is the type of a const parameter.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

// Decl renders the parameter as it appears in an impl generic list:
// bounds kept, defaults dropped.
func (p *GenericParam) Decl() string {
	switch p.Kind {
	case ParamConst:
		return "const " + p.Name + ": " + p.Type
	default:
		if p.Bounds == "" {
			return p.Name
		}
		return p.Name + ": " + p.Bounds
	}
}

// Source renders the parameter as declared, default included.
func (p *GenericParam) Source() string {
	s := p.Decl()
	if p.Default != "" {
		s += " = " + p.Default
	}
	return s
}

// Impl is a trait impl block.
type Impl struct {
	Generics Generics `json:"generics,omitzero" yaml:"generics,omitempty" toml:"generics,omitempty"`

	// Negative marks `impl !Trait for T`.
	Negative bool `json:"negative,omitempty" yaml:"negative,omitempty" toml:"negative,omitempty"`

	// Trait is the trait path with generic args, e.g. "Add<&X>".
	Trait string `json:"trait" yaml:"trait" toml:"trait"`

	// Self is the self type, e.g. "X" or "&X<T>".
	Self string `json:"self" yaml:"self" toml:"self"`

	Items []*AssocItem `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
}

// AssocKind is the kind of an associated item.
type AssocKind string

const (
	AssocType  AssocKind = "type"
	AssocFn    AssocKind = "fn"
	AssocConst AssocKind = "const"
)

// AssocItem is one item of an impl block.
type AssocItem struct {
	Kind AssocKind `json:"kind" yaml:"kind" toml:"kind"`
	Name string    `json:"name" yaml:"name" toml:"name"`

	// Type is the associated type or const type.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// Text is the verbatim source of the item. Required for fns; for types
	// and consts it is derived from Name and Type when empty.
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
}

// Source returns the item source text.
func (a *AssocItem) Source() string {
	if a.Text != "" {
		return strings.TrimSpace(a.Text)
	}
	switch a.Kind {
	case AssocType:
		return "type " + a.Name + " = " + a.Type + ";"
	case AssocConst:
		return "const " + a.Name + ": " + a.Type + ";"
	}
	return ""
}

// AssocType returns the associated type named name, if present.
func (im *Impl) AssocType(name string) (*AssocItem, bool) {
	for _, a := range im.Items {
		if a.Kind == AssocType && a.Name == name {
			return a, true
		}
	}
	return nil, false
}
