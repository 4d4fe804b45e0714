// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build derivex_minimal

package main

import (
	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/generators/compare"
	"github.com/albertocavalcante/derivex/generators/structural"
)

func init() {
	// Minimal build: no operator traits; their requests report
	// "not available in this build"
	for _, family := range [][]generator.Synthesizer{structural.All(), compare.All()} {
		for _, s := range family {
			generator.Register(s)
		}
	}
}
