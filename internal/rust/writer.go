// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rust

import (
	"bytes"
	"fmt"
	"strings"
)

const indent = "    "

// Writer accumulates Rust source lines. Indentation follows the braces:
// a line ending in an opening delimiter indents the lines after it, and a
// line starting with a closing delimiter is dedented first.
type Writer struct {
	buf   bytes.Buffer
	depth int
}

// Line writes one line.
func (w *Writer) Line(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		w.buf.WriteByte('\n')
		return
	}
	if closes(s) && w.depth > 0 {
		w.depth--
	}
	for range w.depth {
		w.buf.WriteString(indent)
	}
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
	if opens(s) {
		w.depth++
	}
}

// Text writes source that keeps its own layout. Each line is prefixed with
// the current indentation, except lines that start inside a string
// literal, and nothing is trimmed or counted toward the depth.
func (w *Writer) Text(lines ...string) {
	var st literal
	for _, l := range lines {
		inside := st.open
		st.scan(l)
		switch {
		case inside:
			w.buf.WriteString(l)
		case strings.TrimSpace(l) != "":
			for range w.depth {
				w.buf.WriteString(indent)
			}
			w.buf.WriteString(l)
		}
		w.buf.WriteByte('\n')
	}
}

// literal tracks whether a scan position is inside a string literal,
// plain or raw.
type literal struct {
	open   bool
	raw    bool
	hashes int
}

func (st *literal) scan(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if st.open {
			switch {
			case !st.raw && c == '\\':
				i++
			case c == '"' && (!st.raw || closesRaw(line[i+1:], st.hashes)):
				st.open = false
				if st.raw {
					i += st.hashes
				}
			}
			continue
		}
		switch c {
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return
			}
		case '\'':
			i = charEnd(line, i)
		case 'r':
			if !rawPrefix(line, i) {
				continue
			}
			j := i + 1
			for j < len(line) && line[j] == '#' {
				j++
			}
			if j < len(line) && line[j] == '"' {
				st.open, st.raw, st.hashes = true, true, j-i-1
				i = j
			}
		case '"':
			st.open, st.raw, st.hashes = true, false, 0
		}
	}
}

// rawPrefix reports whether the r at i starts a raw string prefix (`r` or
// `br`) rather than ending an identifier.
func rawPrefix(line string, i int) bool {
	if i == 0 || !isIdentByte(line[i-1]) {
		return true
	}
	return line[i-1] == 'b' && (i == 1 || !isIdentByte(line[i-2]))
}

func closesRaw(rest string, hashes int) bool {
	if len(rest) < hashes {
		return false
	}
	return strings.Count(rest[:hashes], "#") == hashes
}

// charEnd returns the index of the closing quote of a char literal at i,
// or i itself when the quote starts a lifetime.
func charEnd(line string, i int) int {
	if i+3 < len(line) && line[i+1] == '\\' {
		if j := strings.IndexByte(line[i+3:], '\''); j >= 0 {
			return i + 3 + j
		}
		return i
	}
	if i+2 < len(line) && line[i+2] == '\'' {
		return i + 2
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Linef writes one formatted line.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Lines writes each line in order.
func (w *Writer) Lines(lines ...string) {
	for _, l := range lines {
		w.Line(l)
	}
}

// Indent and Dedent adjust the depth for lines that do not carry their
// own delimiters, such as where predicates.
func (w *Writer) Indent() { w.depth++ }

func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Bytes returns the written source.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// String returns the written source.
func (w *Writer) String() string { return w.buf.String() }

func opens(s string) bool {
	switch s[len(s)-1] {
	case '{', '(', '[':
		return true
	}
	return false
}

func closes(s string) bool {
	switch s[0] {
	case '}', ')', ']':
		return true
	}
	return false
}
