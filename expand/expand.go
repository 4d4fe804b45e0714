// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package expand drives synthesis for whole descriptor files.
//
// For every item it reads the `#[derive_ex(...)]` requests, calls the
// registered synthesizer of each requested trait in emission order, and
// splices the results after the item with the consumed helper attributes
// removed. A request that fails becomes a `compile_error!` in place of its
// impls; the other requests of the item are still synthesized.
package expand

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/logger"
	"github.com/albertocavalcante/derivex/internal/rust"
	"github.com/albertocavalcante/derivex/internal/walk"
	"github.com/albertocavalcante/derivex/model"
)

// Options configures an expansion.
type Options struct {
	Config generator.Config

	// Logger overrides the package logger.
	Logger *zap.Logger
}

func (o Options) log() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger.Sugar()
	}
	return logger.Logger
}

// Result is the expansion of one item.
type Result struct {
	// Item is the source item without its consumed attributes.
	Item *model.Item

	// Nodes are the generated impls and compile errors in emission order.
	Nodes []rust.Node

	// Diagnostics are the failures and dumps, in the order of Nodes.
	Diagnostics []*errors.Diagnostic
}

// Source renders the item followed by what was generated for it.
func (r *Result) Source() []byte {
	return rust.Print(append([]rust.Node{rust.Item(r.Item)}, r.Nodes...)...)
}

// fail records diagnostics for err, each as an inline compile error.
// Identical diagnostics of one item are reported once.
func (r *Result) fail(err error) {
	for _, d := range errors.Diagnostics(err) {
		if r.has(d) {
			continue
		}
		r.Diagnostics = append(r.Diagnostics, d)
		r.Nodes = append(r.Nodes, &rust.CompileError{Message: d.Message})
	}
}

func (r *Result) has(d *errors.Diagnostic) bool {
	for _, o := range r.Diagnostics {
		if o.Span == d.Span && o.Message == d.Message {
			return true
		}
	}
	return false
}

// File expands every item of f in declaration order.
func File(ctx context.Context, f *model.File, opts Options) ([]*Result, error) {
	out := make([]*Result, 0, len(f.Items))
	for _, it := range f.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, Item(ctx, it, opts))
	}
	return out, nil
}

// Render concatenates the rendered results, separated by blank lines.
func Render(results []*Result) []byte {
	var parts []string
	for _, r := range results {
		parts = append(parts, strings.TrimRight(string(r.Source()), "\n"))
	}
	if len(parts) == 0 {
		return nil
	}
	return []byte(strings.Join(parts, "\n\n") + "\n")
}

// Diagnostics returns the diagnostics of every result.
func Diagnostics(results []*Result) []*errors.Diagnostic {
	var ds []*errors.Diagnostic
	for _, r := range results {
		ds = append(ds, r.Diagnostics...)
	}
	return ds
}

// Item expands one item. Failures never abort: they are reported in the
// result.
func Item(ctx context.Context, it *model.Item, opts Options) *Result {
	if it.IsImpl() {
		return implItem(ctx, it, opts)
	}
	log := opts.log()
	w, err := walk.New(it)
	r := &Result{Item: walk.Strip(it, w.Consumed)}
	if err != nil {
		// A broken attribute may change every impl, so none is emitted.
		log.Debugw("item rejected", "item", it.Name, "error", err)
		r.fail(err)
		return r
	}
	for _, e := range w.Requests.Entries() {
		in := &generator.Input{Item: w, Entry: e, Requests: w.Requests}
		request(ctx, r, in, opts)
	}
	if missing := generator.Missing(names(w.Requests)); len(missing) > 0 {
		log.Debugw("supertraits not requested", "item", it.Name, "missing", missing)
	}
	return r
}

func implItem(ctx context.Context, it *model.Item, opts Options) *Result {
	r := &Result{Item: walk.Strip(it, attr.Consumed{})}
	reqs, err := attr.ParseRequests(it.Attrs)
	if err != nil {
		r.fail(err)
		return r
	}
	for _, e := range reqs.Entries() {
		in := &generator.Input{Impl: it, Entry: e, Requests: reqs}
		request(ctx, r, in, opts)
	}
	return r
}

// request runs the synthesizer of one request and records its outcome.
func request(ctx context.Context, r *Result, in *generator.Input, opts Options) {
	log := opts.log()
	e := in.Entry
	item := r.Item.Name
	if r.Item.IsImpl() {
		item = "impl " + r.Item.Impl.Trait + " for " + r.Item.Impl.Self
	}

	s, ok := generator.Lookup(e.Kind)
	if !ok {
		r.fail(errors.At(e.Span, "derive `%s` is not available in this build", e.Kind))
		return
	}
	if in.Impl != nil && !s.Metadata().FromImpl {
		r.fail(errors.At(e.Span, "`#[derive_ex(%s)]` cannot be used with impl blocks", e.Kind))
		return
	}
	out, err := s.Synthesize(ctx, in, opts.Config)
	if err != nil {
		log.Debugw("synthesis failed", "item", item, "trait", e.Kind.String(), "error", err)
		r.fail(err)
		return
	}
	if e.Dump || opts.Config.Dump {
		code := strings.TrimRight(string(rust.Print(out.Nodes...)), "\n")
		log.Warnw("dumping generated code", "item", item, "trait", e.Kind.String())
		r.fail(errors.At(e.Span, "dump:\n%s", code))
		return
	}
	log.Debugw("synthesized", "item", item, "trait", e.Kind.String(), "impls", out.Len())
	r.Nodes = append(r.Nodes, out.Nodes...)
}

func names(r *attr.Requests) []string {
	ks := r.Kinds()
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}
