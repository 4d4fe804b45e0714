// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package attr

import (
	"strings"

	"github.com/albertocavalcante/derivex/internal/names"
)

// Kind is a trait that can be requested with `#[derive_ex(...)]`.
//
// The declaration order is the order generated impls are emitted in.
type Kind int

const (
	Copy Kind = iota
	Clone
	Debug
	Default
	Deref
	DerefMut
	PartialEq
	Eq
	PartialOrd
	Ord
	Hash

	Add
	BitAnd
	BitOr
	BitXor
	Div
	Mul
	Rem
	Shl
	Shr
	Sub

	AddAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	DivAssign
	MulAssign
	RemAssign
	ShlAssign
	ShrAssign
	SubAssign

	Neg
	Not

	numKinds
)

var kindNames = [numKinds]string{
	Copy:         "Copy",
	Clone:        "Clone",
	Debug:        "Debug",
	Default:      "Default",
	Deref:        "Deref",
	DerefMut:     "DerefMut",
	PartialEq:    "PartialEq",
	Eq:           "Eq",
	PartialOrd:   "PartialOrd",
	Ord:          "Ord",
	Hash:         "Hash",
	Add:          "Add",
	BitAnd:       "BitAnd",
	BitOr:        "BitOr",
	BitXor:       "BitXor",
	Div:          "Div",
	Mul:          "Mul",
	Rem:          "Rem",
	Shl:          "Shl",
	Shr:          "Shr",
	Sub:          "Sub",
	AddAssign:    "AddAssign",
	BitAndAssign: "BitAndAssign",
	BitOrAssign:  "BitOrAssign",
	BitXorAssign: "BitXorAssign",
	DivAssign:    "DivAssign",
	MulAssign:    "MulAssign",
	RemAssign:    "RemAssign",
	ShlAssign:    "ShlAssign",
	ShrAssign:    "ShrAssign",
	SubAssign:    "SubAssign",
	Neg:          "Neg",
	Not:          "Not",
}

// Kinds returns every kind in emission order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the kind named by a trait identifier such as "PartialEq".
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// String returns the trait name.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Snake returns the snake_case trait name, which is also the helper
// attribute name of a comparison trait: "PartialOrd" -> "partial_ord".
func (k Kind) Snake() string {
	return names.Snake(k.String())
}

// Path returns the absolute trait path, e.g. "::core::cmp::PartialEq".
func (k Kind) Path() string {
	switch k {
	case Copy:
		return "::core::marker::Copy"
	case Clone:
		return "::core::clone::Clone"
	case Debug:
		return "::core::fmt::Debug"
	case Default:
		return "::core::default::Default"
	case PartialEq, Eq, PartialOrd, Ord:
		return "::core::cmp::" + k.String()
	case Hash:
		return "::core::hash::Hash"
	}
	return "::core::ops::" + k.String()
}

// Method returns the name of the trait's required method, or "" for
// marker traits.
func (k Kind) Method() string {
	switch k {
	case Copy, Eq:
		return ""
	case Clone:
		return "clone"
	case Debug:
		return "fmt"
	case Default:
		return "default"
	case Deref:
		return "deref"
	case DerefMut:
		return "deref_mut"
	case PartialEq:
		return "eq"
	case PartialOrd:
		return "partial_cmp"
	case Ord:
		return "cmp"
	case Hash:
		return "hash"
	}
	if k.IsAssign() {
		return strings.ToLower(k.Binary().String()) + "_assign"
	}
	return strings.ToLower(k.String())
}

// IsCompare reports whether k is one of PartialEq, Eq, PartialOrd, Ord, Hash.
func (k Kind) IsCompare() bool { return k >= PartialEq && k <= Hash }

// IsBinary reports whether k is a binary operator such as Add.
func (k Kind) IsBinary() bool { return k >= Add && k <= Sub }

// IsAssign reports whether k is a compound assignment operator such as
// AddAssign.
func (k Kind) IsAssign() bool { return k >= AddAssign && k <= SubAssign }

// IsUnary reports whether k is Neg or Not.
func (k Kind) IsUnary() bool { return k == Neg || k == Not }

// IsOp reports whether k is any operator trait.
func (k Kind) IsOp() bool { return k >= Add && k <= Not }

// Binary maps an assignment operator to its binary form.
// Other kinds are returned unchanged.
func (k Kind) Binary() Kind {
	if k.IsAssign() {
		return k - AddAssign + Add
	}
	return k
}

// Assign maps a binary operator to its assignment form.
// Other kinds are returned unchanged.
func (k Kind) Assign() Kind {
	if k.IsBinary() {
		return k - Add + AddAssign
	}
	return k
}

// Chain returns the comparison slots consulted for k, highest priority
// first. A field's behavior for PartialEq may come from its partial_eq,
// eq, partial_ord or ord attribute, in that order.
func (k Kind) Chain() []Kind {
	switch k {
	case PartialEq:
		return []Kind{PartialEq, Eq, PartialOrd, Ord}
	case Eq:
		return []Kind{Eq, Ord}
	case PartialOrd:
		return []Kind{PartialOrd, Ord}
	case Ord:
		return []Kind{Ord}
	case Hash:
		return []Kind{Hash, Eq, Ord}
	}
	return nil
}

// Affects reports whether the comparison slot k is consulted for target.
func (k Kind) Affects(target Kind) bool {
	for _, c := range target.Chain() {
		if c == k {
			return true
		}
	}
	return false
}

// compareKinds lists the comparison slots in the order conflicts are
// reported.
var compareKinds = [...]Kind{Ord, PartialOrd, Eq, PartialEq, Hash}

func compareIndex(k Kind) int {
	return int(k - PartialEq)
}
