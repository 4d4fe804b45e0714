// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import "testing"

func TestSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PartialEq", "partial_eq"},
		{"PartialOrd", "partial_ord"},
		{"Eq", "eq"},
		{"Hash", "hash"},
		{"BitAnd", "bit_and"},
		{"BitXorAssign", "bit_xor_assign"},
		{"Shl", "shl"},
		{"DerefMut", "deref_mut"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Snake(tt.input); got != tt.want {
				t.Errorf("Snake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMemberBinding(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		member  string
		binding string
	}{
		{"a", 0, "a", "_self_a"},
		{"", 2, "2", "_self_2"},
		{"r#type", 1, "r#type", "_self_type"},
	}
	for _, tt := range tests {
		if got := Member(tt.name, tt.index); got != tt.member {
			t.Errorf("Member(%q, %d) = %q, want %q", tt.name, tt.index, got, tt.member)
		}
		if got := Binding("_self", tt.name, tt.index); got != tt.binding {
			t.Errorf("Binding(_self, %q, %d) = %q, want %q", tt.name, tt.index, got, tt.binding)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc", `"abc"`},
		{"dump:\nimpl X {}", `"dump:\nimpl X {}"`},
		{`say "hi" \o/`, `"say \"hi\" \\o/"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.input); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
