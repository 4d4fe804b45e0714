// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Attribute is one outer attribute such as `#[eq(key = $.len())]`.
//
// In a document an attribute is either the bare attribute text or a
// mapping with "text" and "span" keys.
type Attribute struct {
	Text string `json:"text" yaml:"text" toml:"text"`
	Span Span   `json:"span,omitzero" yaml:"span,omitempty" toml:"span,omitempty"`
}

// NewAttribute returns an attribute with the given text and no span.
func NewAttribute(text string) *Attribute {
	return &Attribute{Text: text}
}

// Path returns the attribute path, e.g. "derive_ex" or "serde".
func (a *Attribute) Path() string {
	inner, _ := a.inner()
	i := 0
	for i < len(inner) {
		c := inner[i]
		if c == '_' || c == ':' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			i++
			continue
		}
		break
	}
	return strings.TrimSpace(inner[:i])
}

// Args returns the text inside the parentheses following the path and the
// byte offset of that text within Text. ok is false when the attribute has
// no parenthesized argument list, as in `#[default]` or `#[doc = ".."]`.
func (a *Attribute) Args() (args string, offset int, ok bool) {
	inner, start := a.inner()
	rest := inner[len(a.pathPrefix(inner)):]
	trimmed := strings.TrimLeft(rest, " \t\n")
	if !strings.HasPrefix(trimmed, "(") {
		return "", 0, false
	}
	end := strings.LastIndex(trimmed, ")")
	if end < 0 {
		return "", 0, false
	}
	lead := len(inner) - len(trimmed)
	return trimmed[1:end], start + lead + 1, true
}

// IsBare reports whether the attribute is a bare path such as `#[default]`.
func (a *Attribute) IsBare() bool {
	inner, _ := a.inner()
	return strings.TrimSpace(inner) == a.Path()
}

func (a *Attribute) pathPrefix(inner string) string {
	p := a.Path()
	i := strings.Index(inner, p)
	if i < 0 {
		return ""
	}
	return inner[:i+len(p)]
}

// inner strips `#[` and `]` and returns the byte offset of the remainder.
func (a *Attribute) inner() (string, int) {
	s := a.Text
	if !strings.HasPrefix(s, "#[") || !strings.HasSuffix(s, "]") {
		return s, 0
	}
	return s[2 : len(s)-1], 2
}

func (a *Attribute) validate() error {
	s := strings.TrimSpace(a.Text)
	if !strings.HasPrefix(s, "#[") || !strings.HasSuffix(s, "]") {
		return errors.Newf("attribute %q: expected `#[...]`", a.Text)
	}
	if a.Path() == "" {
		return errors.Newf("attribute %q: missing path", a.Text)
	}
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping. Scalars pick up the node
// position as their span.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Text = strings.TrimSpace(node.Value)
		a.Span = Span{Line: node.Line, Column: node.Column}
		return nil
	}
	type plain Attribute
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = Attribute(p)
	a.Text = strings.TrimSpace(a.Text)
	return nil
}

// UnmarshalJSON accepts a string or an object.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Attribute{Text: strings.TrimSpace(s)}
		return nil
	}
	type plain Attribute
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Attribute(p)
	a.Text = strings.TrimSpace(a.Text)
	return nil
}

// UnmarshalTOML accepts a string or an inline table.
func (a *Attribute) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*a = Attribute{Text: strings.TrimSpace(v)}
		return nil
	case map[string]any:
		*a = Attribute{}
		for k, val := range v {
			switch k {
			case "text":
				s, ok := val.(string)
				if !ok {
					return errors.Newf("attribute text: expected string, got %T", val)
				}
				a.Text = strings.TrimSpace(s)
			case "span":
				m, ok := val.(map[string]any)
				if !ok {
					return errors.Newf("attribute span: expected table, got %T", val)
				}
				a.Span = Span{Line: tomlInt(m["line"]), Column: tomlInt(m["column"])}
			default:
				return errors.Newf("attribute: unknown key %q", k)
			}
		}
		return nil
	default:
		return errors.Newf("attribute: expected string or table, got %T", v)
	}
}

func tomlInt(v any) int {
	if n, ok := v.(int64); ok {
		return int(n)
	}
	return 0
}

// String returns the attribute text.
func (a *Attribute) String() string { return a.Text }

// Span is a 1-based source position. The zero Span means unknown.
type Span struct {
	Line   int `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty" toml:"column,omitempty"`
}

// IsZero reports whether the position is unknown.
func (s Span) IsZero() bool { return s.Line == 0 }

// Advance returns the position reached after text, starting at s.
// Unknown positions stay unknown.
func (s Span) Advance(text string) Span {
	if s.IsZero() {
		return s
	}
	for _, r := range text {
		if r == '\n' {
			s.Line++
			s.Column = 1
			continue
		}
		s.Column++
	}
	return s
}

func (s Span) String() string {
	if s.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}
