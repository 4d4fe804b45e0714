// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package token lexes Rust token trees and rewrites them.
//
// Attribute arguments, types and key expressions arrive as text. The lexer
// turns them into nested streams close to what a Rust proc macro sees:
// identifiers, lifetimes, literals, single-character punctuation with a
// joint flag, and delimited groups. Each token remembers whether whitespace
// preceded it, so printing a stream gives back the user's text with its
// spacing normalized to single spaces.
package token

import "strings"

// Kind is the kind of a token.
type Kind int

const (
	Ident Kind = iota
	Lifetime
	Literal
	Punct
	Group
	// Raw is verbatim text spliced in by a rewrite.
	Raw
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Lifetime:
		return "lifetime"
	case Literal:
		return "literal"
	case Punct:
		return "punct"
	case Group:
		return "group"
	case Raw:
		return "raw"
	}
	return "unknown"
}

// Delim is the opening delimiter of a group: '(', '[' or '{'.
type Delim byte

func (d Delim) close() byte {
	switch d {
	case '(':
		return ')'
	case '[':
		return ']'
	}
	return '}'
}

// Token is one token tree.
type Token struct {
	Kind Kind
	Text string

	// Joint is set on a Punct immediately followed by another Punct, as in
	// the first ':' of "::".
	Joint bool

	// Space is set when whitespace preceded the token.
	Space bool

	// Delim and Inner describe a Group; CloseSpace is set when whitespace
	// preceded the closing delimiter.
	Delim      Delim
	Inner      Stream
	CloseSpace bool

	// Pos is the byte offset of the token in the lexed source.
	Pos int
}

// Stream is a sequence of token trees.
type Stream []Token

// NewRaw returns a Raw token holding text.
func NewRaw(text string) Token {
	return Token{Kind: Raw, Text: text}
}

// IsIdent reports whether t is the identifier name.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && t.Text == name
}

// IsPunct reports whether t is the punctuation character c.
func (t Token) IsPunct(c byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == c
}

// IsGroup reports whether t is a group delimited by d.
func (t Token) IsGroup(d Delim) bool {
	return t.Kind == Group && t.Delim == d
}

// String renders the token.
func (t Token) String() string {
	var b strings.Builder
	t.write(&b, false)
	return b.String()
}

func (t Token) write(b *strings.Builder, space bool) {
	if space && t.Space {
		b.WriteByte(' ')
	}
	if t.Kind != Group {
		b.WriteString(t.Text)
		return
	}
	b.WriteByte(byte(t.Delim))
	t.Inner.write(b, true)
	if t.CloseSpace {
		b.WriteByte(' ')
	}
	b.WriteByte(t.Delim.close())
}

// String renders the stream. Leading whitespace is dropped.
func (s Stream) String() string {
	var b strings.Builder
	s.write(&b, false)
	return b.String()
}

func (s Stream) write(b *strings.Builder, leading bool) {
	for i, t := range s {
		t.write(b, i > 0 || leading)
	}
}

// Pos returns the offset of the first token, or -1 for an empty stream.
func (s Stream) Pos() int {
	if len(s) == 0 {
		return -1
	}
	return s[0].Pos
}
