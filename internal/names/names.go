// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names converts trait and field names into the identifiers used in
// attributes and generated code.
package names

import (
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"
)

// Snake converts a CamelCase trait name to its snake_case helper or method
// name: "PartialEq" -> "partial_eq", "BitAnd" -> "bit_and".
func Snake(name string) string {
	return inflect.Underscore(name)
}

// Unraw strips the raw identifier prefix: "r#type" -> "type".
func Unraw(ident string) string {
	return strings.TrimPrefix(ident, "r#")
}

// Member returns the field access member: the field name, or the tuple
// index when the field is unnamed.
func Member(name string, index int) string {
	if name != "" {
		return name
	}
	return strconv.Itoa(index)
}

// Binding returns a local identifier for a field, such as "_self_a" or
// "_other_0".
func Binding(prefix, name string, index int) string {
	if name != "" {
		return prefix + "_" + Unraw(name)
	}
	return prefix + "_" + strconv.Itoa(index)
}

// Quote returns s as a Rust string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
