// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for trait synthesizers.
package generator

import (
	"context"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

// Synthesizer is the interface that every trait synthesizer implements.
type Synthesizer interface {
	// Metadata returns information about this synthesizer.
	Metadata() Metadata

	// Synthesize produces the impls for one request.
	Synthesize(ctx context.Context, in *Input, cfg Config) (*Output, error)
}

// Metadata describes a synthesizer.
type Metadata struct {
	// Name is the trait name as written in `#[derive_ex(...)]`.
	Name string

	// Family groups related synthesizers ("compare", "ops", "structural").
	Family string

	// Trait is the absolute trait path, e.g. "::core::clone::Clone".
	Trait string

	// Requires lists the supertraits the generated impl relies on.
	Requires []string

	// Description is a human-readable description.
	Description string

	// FromImpl reports whether the synthesizer also accepts a hand-written
	// impl block as its source.
	FromImpl bool
}

// Input is one request with the item it applies to.
type Input struct {
	// Item is the walked struct or enum. Nil when the source is an impl.
	Item *walk.Item

	// Impl is the impl item for requests written on an impl block.
	Impl *model.Item

	// Entry is the request itself.
	Entry *attr.Entry

	// Requests holds every request written on the same source, Entry
	// included.
	Requests *attr.Requests
}
