// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pieces(ss []Stream) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		src   string
		angle bool
		want  []string
	}{
		{"a, b(c, d), e", false, []string{"a", "b(c, d)", "e"}},
		{"a, b,", false, []string{"a", "b"}},
		{"HashMap<K, V>: Clone, ..", true, []string{"HashMap<K, V>: Clone", ".."}},
		{"HashMap<K, V>", false, []string{"HashMap<K", "V>"}},
		{"Fn(A) -> B, C", true, []string{"Fn(A) -> B", "C"}},
		{"", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, pieces(Split(MustLex(tt.src), ',', tt.angle)))
		})
	}
}

func TestIndexColon(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"T : Copy", 1},
		{"::core::X<T>: Copy", 9},
		{"<T as Tr>::X", -1},
		{"Vec<T>", -1},
		{"F<A: B>: C", 6},
	}
	for _, tt := range tests {
		if got := IndexColon(MustLex(tt.src)); got != tt.want {
			t.Errorf("IndexColon(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestReplace(t *testing.T) {
	s := MustLex("$.len() + f($)")
	got := Replace(s, func(t Token) bool { return t.IsPunct('$') }, Stream{NewRaw("(self.a)")})
	assert.Equal(t, "(self.a).len() + f((self.a))", got.String())
}

func TestMentionsAny(t *testing.T) {
	names := map[string]bool{"T": true, "N": true}
	tests := []struct {
		src  string
		want bool
	}{
		{"T", true},
		{"Option<T>", true},
		{"[u8; N]", true},
		{"<T as Iterator>::Item", true},
		{"fn(&T) -> bool", true},
		{"u32", false},
		{"foo::T", false},
		{"::T", false},
		{"PhantomData<fn() -> U>", false},
		{"&'a str", false},
	}
	for _, tt := range tests {
		if got := MentionsAny(MustLex(tt.src), names); got != tt.want {
			t.Errorf("MentionsAny(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestExpandSelf(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Self: MyTrait", "X<T>: MyTrait"},
		{"Box<Self>", "Box<X<T>>"},
		{"Self::Item: Copy", "<X<T>>::Item: Copy"},
		{"a::Self", "a::Self"},
	}
	for _, tt := range tests {
		if got := ExpandSelf(MustLex(tt.src), "X<T>").String(); got != tt.want {
			t.Errorf("ExpandSelf(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestIsPath(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"ABC", true},
		{"a::B", true},
		{"::core::u8::MAX", true},
		{"T::new()", false},
		{"X::A(50)", false},
		{"50", false},
		{"a::", false},
	}
	for _, tt := range tests {
		if got := IsPath(MustLex(tt.src)); got != tt.want {
			t.Errorf("IsPath(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestIsStringLit(t *testing.T) {
	assert.True(t, IsStringLit(MustLex(`"abc"`)))
	assert.True(t, IsStringLit(MustLex(`r"abc"`)))
	assert.False(t, IsStringLit(MustLex(`'c'`)))
	assert.False(t, IsStringLit(MustLex(`"a".into()`)))
}

func TestIsDotDot(t *testing.T) {
	assert.True(t, IsDotDot(MustLex("..")))
	assert.False(t, IsDotDot(MustLex(". .")))
	assert.False(t, IsDotDot(MustLex("..=")))
}
