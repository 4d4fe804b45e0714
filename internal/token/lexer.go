// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package token

import (
	"fmt"
	"strings"
)

// SyntaxError is a lexing failure at a byte offset.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

const punctChars = "~!@#$%^&*-+=|\\:;,.<>/?"

// Lex tokenizes src into a stream of token trees.
func Lex(src string) (Stream, error) {
	l := &lexer{src: src}
	s, err := l.stream(0)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MustLex is Lex for text known to be well formed.
func MustLex(src string) Stream {
	s, err := Lex(src)
	if err != nil {
		panic(err)
	}
	return s
}

type lexer struct {
	src string
	pos int

	// closeSpace records whether whitespace preceded the last closing
	// delimiter consumed by stream.
	closeSpace bool
}

// stream lexes until the closing delimiter of want, or EOF when want is 0.
func (l *lexer) stream(want byte) (Stream, error) {
	var out Stream
	for {
		space := l.skip()
		if l.pos >= len(l.src) {
			if want != 0 {
				return nil, &SyntaxError{Offset: l.pos, Msg: fmt.Sprintf("unclosed delimiter, expected %q", want)}
			}
			return out, nil
		}
		c := l.src[l.pos]
		switch {
		case c == ')' || c == ']' || c == '}':
			if c != want {
				return nil, &SyntaxError{Offset: l.pos, Msg: fmt.Sprintf("unexpected %q", c)}
			}
			if len(out) == 0 {
				// An empty group never records a closing space.
				space = false
			}
			l.pos++
			l.closeSpace = space
			return out, nil
		case c == '(' || c == '[' || c == '{':
			start := l.pos
			l.pos++
			d := Delim(c)
			inner, err := l.stream(d.close())
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: Group, Delim: d, Inner: inner, CloseSpace: l.closeSpace, Space: space, Pos: start})
		default:
			t, err := l.leaf()
			if err != nil {
				return nil, err
			}
			t.Space = space
			out = append(out, t)
		}
	}
}

// skip consumes whitespace and comments and reports whether it consumed any.
func (l *lexer) skip() bool {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++
		case strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end + 4
			}
		default:
			return l.pos > start
		}
	}
	return l.pos > start
}

func (l *lexer) leaf() (Token, error) {
	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == 'r' && l.peek(1) == '#' && isIdentStart(l.peek(2)):
		l.pos += 2
		l.ident()
		return Token{Kind: Ident, Text: l.src[start:l.pos], Pos: start}, nil
	case c == 'r' && (l.peek(1) == '"' || l.peek(1) == '#'):
		return l.rawString(start, 1)
	case c == 'b' && l.peek(1) == 'r' && (l.peek(2) == '"' || l.peek(2) == '#'):
		return l.rawString(start, 2)
	case c == 'b' && l.peek(1) == '"':
		l.pos++
		return l.quoted(start, '"')
	case c == 'b' && l.peek(1) == '\'':
		l.pos++
		return l.quoted(start, '\'')
	case isIdentStart(c):
		l.ident()
		return Token{Kind: Ident, Text: l.src[start:l.pos], Pos: start}, nil
	case c == '"':
		return l.quoted(start, '"')
	case c == '\'':
		if isIdentStart(l.peek(1)) {
			// 'a is a lifetime unless it closes as a char literal: 'a'.
			end := l.pos + 1
			for end < len(l.src) && isIdentContinue(l.src[end]) {
				end++
			}
			if end >= len(l.src) || l.src[end] != '\'' {
				l.pos = end
				return Token{Kind: Lifetime, Text: l.src[start:end], Pos: start}, nil
			}
		}
		return l.quoted(start, '\'')
	case c >= '0' && c <= '9':
		l.number()
		return Token{Kind: Literal, Text: l.src[start:l.pos], Pos: start}, nil
	case strings.IndexByte(punctChars, c) >= 0:
		l.pos++
		joint := l.pos < len(l.src) && strings.IndexByte(punctChars, l.src[l.pos]) >= 0
		// A quote after a punct can start a lifetime, as in &'a.
		if l.pos < len(l.src) && l.src[l.pos] == '\'' {
			joint = true
		}
		return Token{Kind: Punct, Text: string(c), Joint: joint, Pos: start}, nil
	}
	return Token{}, &SyntaxError{Offset: start, Msg: fmt.Sprintf("unexpected character %q", c)}
}

func (l *lexer) peek(n int) byte {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return 0
}

func (l *lexer) ident() {
	for l.pos < len(l.src) && isIdentContinue(l.src[l.pos]) {
		l.pos++
	}
}

// quoted lexes a string or char literal whose opening quote is at l.pos.
func (l *lexer) quoted(start int, quote byte) (Token, error) {
	l.pos++
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case quote:
			l.pos++
			l.suffix()
			return Token{Kind: Literal, Text: l.src[start:l.pos], Pos: start}, nil
		}
		l.pos++
	}
	return Token{}, &SyntaxError{Offset: start, Msg: "unterminated literal"}
}

// rawString lexes r"..", r#".."#, br"..". prefix is the length of r or br.
func (l *lexer) rawString(start, prefix int) (Token, error) {
	l.pos += prefix
	hashes := 0
	for l.pos < len(l.src) && l.src[l.pos] == '#' {
		hashes++
		l.pos++
	}
	if l.pos >= len(l.src) || l.src[l.pos] != '"' {
		return Token{}, &SyntaxError{Offset: start, Msg: "malformed raw string"}
	}
	l.pos++
	closing := "\"" + strings.Repeat("#", hashes)
	end := strings.Index(l.src[l.pos:], closing)
	if end < 0 {
		return Token{}, &SyntaxError{Offset: start, Msg: "unterminated raw string"}
	}
	l.pos += end + len(closing)
	l.suffix()
	return Token{Kind: Literal, Text: l.src[start:l.pos], Pos: start}, nil
}

func (l *lexer) suffix() {
	if l.pos < len(l.src) && isIdentStart(l.src[l.pos]) {
		l.ident()
	}
}

func (l *lexer) number() {
	if l.src[l.pos] == '0' && (l.peek(1) == 'x' || l.peek(1) == 'o' || l.peek(1) == 'b') {
		l.pos += 2
		for l.pos < len(l.src) && (isHex(l.src[l.pos]) || l.src[l.pos] == '_') {
			l.pos++
		}
		l.suffix()
		return
	}
	l.digits()
	// 1.5 is a float; 1..2 and x.0.method() are not.
	if l.peek(0) == '.' && l.peek(1) >= '0' && l.peek(1) <= '9' {
		l.pos++
		l.digits()
	}
	if c := l.peek(0); c == 'e' || c == 'E' {
		n := l.peek(1)
		if n >= '0' && n <= '9' || (n == '+' || n == '-') && l.peek(2) >= '0' && l.peek(2) <= '9' {
			l.pos += 2
			l.digits()
		}
	}
	l.suffix()
}

func (l *lexer) digits() {
	for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '_') {
		l.pos++
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
