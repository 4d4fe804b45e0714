// SPDX-License-Identifier: MIT

package testutil

import (
	"context"
	"strings"

	"github.com/albertocavalcante/derivex/expand"
	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/model"
)

// Expand runs the expansion over a YAML descriptor using the synthesizers
// currently registered. The output always has "out.rs"; "diagnostics.txt"
// is present only when something was reported.
//
// Flags are "dump" or synthesizer options written as "key=value".
func Expand(input []byte, flags []string) (map[string][]byte, error) {
	f, err := model.Parse(input, model.FormatYAML)
	if err != nil {
		return nil, err
	}

	cfg := generator.Config{Options: map[string]string{}}
	for _, fl := range flags {
		if key, value, ok := strings.Cut(fl, "="); ok {
			cfg.Options[key] = value
			continue
		}
		if fl == "dump" {
			cfg.Dump = true
		}
	}

	results, err := expand.File(context.Background(), f, expand.Options{Config: cfg})
	if err != nil {
		return nil, err
	}

	got := map[string][]byte{"out.rs": expand.Render(results)}
	if ds := expand.Diagnostics(results); len(ds) > 0 {
		var b strings.Builder
		for _, d := range ds {
			b.WriteString(d.Span.String() + ": " + d.Message + "\n")
		}
		got["diagnostics.txt"] = []byte(b.String())
	}
	return got, nil
}

// RegisterOnce registers every synthesizer not yet registered under its
// name, so test packages can share families.
func RegisterOnce(all ...[]generator.Synthesizer) {
	for _, family := range all {
		for _, s := range family {
			if _, ok := generator.Get(s.Metadata().Name); !ok {
				generator.Register(s)
			}
		}
	}
}
