// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/derivex/internal/rust"

// Output contains generated items.
type Output struct {
	// Nodes are the generated items in emission order.
	Nodes []rust.Node
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{}
}

// Add appends items to the output.
func (o *Output) Add(nodes ...rust.Node) {
	o.Nodes = append(o.Nodes, nodes...)
}

// Len returns the number of generated items.
func (o *Output) Len() int { return len(o.Nodes) }

// Single returns an Output with a single item.
func Single(n rust.Node) *Output {
	return &Output{Nodes: []rust.Node{n}}
}
