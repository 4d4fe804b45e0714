// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package errors re-exports github.com/cockroachdb/errors and adds the
// span-carrying diagnostics produced while synthesizing trait impls.
//
// A synthesis failure is always a *Diagnostic, possibly wrapped with hints:
//
//	err := errors.At(span, "cannot specify `reverse` for type")
//	err = errors.WithHint(err, "#[ord(reverse)]")
//
// Several independent failures are collected with a List.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

var (
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf
