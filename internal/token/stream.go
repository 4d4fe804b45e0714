// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package token

// Split cuts s at top-level occurrences of the punctuation sep. With angle
// set, separators nested in <...> (generic argument lists) are skipped.
// A trailing empty piece, as after a trailing comma, is dropped.
func Split(s Stream, sep byte, angle bool) []Stream {
	var pieces []Stream
	depth := 0
	start := 0
	for i, t := range s {
		if t.Kind != Punct {
			continue
		}
		if angle {
			switch {
			case t.IsPunct('<'):
				depth++
			case t.IsPunct('>') && !arrow(s, i) && depth > 0:
				depth--
			}
		}
		if depth == 0 && t.IsPunct(sep) && !(sep == ':' && colonPair(s, i)) {
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		pieces = append(pieces, s[start:])
	}
	return pieces
}

// IndexColon returns the index of the first top-level ':' that is not part
// of "::", or -1.
func IndexColon(s Stream) int {
	depth := 0
	for i, t := range s {
		switch {
		case t.IsPunct('<'):
			depth++
		case t.IsPunct('>') && !arrow(s, i) && depth > 0:
			depth--
		case depth == 0 && t.IsPunct(':') && !colonPair(s, i):
			return i
		}
	}
	return -1
}

// arrow reports whether the '>' at i closes "->" or "=>".
func arrow(s Stream, i int) bool {
	return i > 0 && s[i-1].Joint && (s[i-1].IsPunct('-') || s[i-1].IsPunct('='))
}

// colonPair reports whether the ':' at i is half of "::".
func colonPair(s Stream, i int) bool {
	if s[i].Joint && i+1 < len(s) && s[i+1].IsPunct(':') {
		return true
	}
	return i > 0 && s[i-1].Joint && s[i-1].IsPunct(':')
}

// IsPathStart reports whether the token at i can begin a path: it is not
// preceded by "::" or '.'.
func IsPathStart(s Stream, i int) bool {
	if i == 0 {
		return true
	}
	prev := s[i-1]
	if prev.IsPunct('.') {
		return false
	}
	return !(prev.IsPunct(':') && i >= 2 && s[i-2].Joint && s[i-2].IsPunct(':'))
}

// IsDotDot reports whether s is exactly "..".
func IsDotDot(s Stream) bool {
	return len(s) == 2 && s[0].IsPunct('.') && s[0].Joint && s[1].IsPunct('.')
}

// Replace returns a copy of s where every token matching match, at any
// depth, is replaced by with. The first replacement token inherits the
// spacing of the token it replaces.
func Replace(s Stream, match func(Token) bool, with Stream) Stream {
	out := make(Stream, 0, len(s))
	for _, t := range s {
		switch {
		case match(t):
			for i, r := range with {
				if i == 0 {
					r.Space = t.Space
				}
				r.Pos = t.Pos
				out = append(out, r)
			}
		case t.Kind == Group:
			t.Inner = Replace(t.Inner, match, with)
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	return out
}

// MentionsAny reports whether s contains an identifier from names at the
// start of a path, at any depth. "T", "Vec<T>" and "<T as X>::Y" mention T;
// "x::T" and "a.T" do not.
func MentionsAny(s Stream, names map[string]bool) bool {
	for i, t := range s {
		switch t.Kind {
		case Ident:
			if names[t.Text] && IsPathStart(s, i) {
				return true
			}
		case Group:
			if MentionsAny(t.Inner, names) {
				return true
			}
		}
	}
	return false
}

// ExpandSelf replaces the Self type with ty. "Self::X" becomes "<ty>::X" so
// the result stays a valid qualified path.
func ExpandSelf(s Stream, ty string) Stream {
	out := make(Stream, 0, len(s))
	for i, t := range s {
		switch {
		case t.IsIdent("Self") && IsPathStart(s, i):
			r := NewRaw(ty)
			if i+2 < len(s) && s[i+1].IsPunct(':') && s[i+1].Joint && s[i+2].IsPunct(':') {
				r = NewRaw("<" + ty + ">")
			}
			r.Space = t.Space
			r.Pos = t.Pos
			out = append(out, r)
		case t.Kind == Group:
			t.Inner = ExpandSelf(t.Inner, ty)
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether any token of s, at any depth, matches.
func Contains(s Stream, match func(Token) bool) bool {
	for _, t := range s {
		if match(t) {
			return true
		}
		if t.Kind == Group && Contains(t.Inner, match) {
			return true
		}
	}
	return false
}

// IsPath reports whether s is a plain path such as "ABC", "a::B" or
// "::core::u8::MAX", without generic arguments or calls.
func IsPath(s Stream) bool {
	if len(s) == 0 {
		return false
	}
	expectIdent := true
	for i := 0; i < len(s); i++ {
		t := s[i]
		if t.IsPunct(':') && t.Joint && i+1 < len(s) && s[i+1].IsPunct(':') {
			if !expectIdent && i == 0 {
				return false
			}
			if expectIdent && i != 0 {
				return false
			}
			i++
			expectIdent = true
			continue
		}
		if t.Kind != Ident || !expectIdent {
			return false
		}
		expectIdent = false
	}
	return !expectIdent
}

// IsStringLit reports whether s is a single string literal.
func IsStringLit(s Stream) bool {
	if len(s) != 1 || s[0].Kind != Literal {
		return false
	}
	txt := s[0].Text
	return txt[0] == '"' || txt[0] == 'r' && len(txt) > 1 && (txt[1] == '"' || txt[1] == '#')
}
