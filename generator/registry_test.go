// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"testing"

	"github.com/albertocavalcante/derivex/internal/attr"
	"github.com/albertocavalcante/derivex/internal/rust"
)

// mockSynthesizer is a test implementation of Synthesizer.
type mockSynthesizer struct {
	name     string
	requires []string
}

func (m *mockSynthesizer) Metadata() Metadata {
	return Metadata{
		Name:        m.name,
		Family:      "mock",
		Trait:       "::mock::" + m.name,
		Requires:    m.requires,
		Description: "Mock synthesizer for testing",
	}
}

func (m *mockSynthesizer) Synthesize(_ context.Context, _ *Input, _ Config) (*Output, error) {
	return Single(&rust.Raw{Lines: []string{"// " + m.name}}), nil
}

func TestRegistry(t *testing.T) {
	// Reset registry before and after test
	Reset()
	defer Reset()

	t.Run("Register and Get", func(t *testing.T) {
		Register(&mockSynthesizer{name: "Clone"})

		got, ok := Get("Clone")
		if !ok {
			t.Fatal("expected to find registered synthesizer")
		}
		if got.Metadata().Name != "Clone" {
			t.Errorf("got name %q, want %q", got.Metadata().Name, "Clone")
		}
		if _, ok := Lookup(attr.Clone); !ok {
			t.Error("expected Lookup to find Clone by kind")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent synthesizer")
		}
	})

	t.Run("List", func(t *testing.T) {
		Reset()
		Register(&mockSynthesizer{name: "Ord"})
		Register(&mockSynthesizer{name: "Eq"})

		names := List()
		if len(names) != 2 {
			t.Fatalf("got %d synthesizers, want 2", len(names))
		}
		// Should be sorted
		if names[0] != "Eq" || names[1] != "Ord" {
			t.Errorf("got %v, want [Eq Ord]", names)
		}
	})

	t.Run("All", func(t *testing.T) {
		Reset()
		Register(&mockSynthesizer{name: "one"})
		Register(&mockSynthesizer{name: "two"})

		all := All()
		if len(all) != 2 {
			t.Fatalf("got %d synthesizers, want 2", len(all))
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()
		Register(&mockSynthesizer{name: "dup"})

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(&mockSynthesizer{name: "dup"})
	})
}

func TestMissing(t *testing.T) {
	Reset()
	defer Reset()
	Register(&mockSynthesizer{name: "PartialEq"})
	Register(&mockSynthesizer{name: "Eq", requires: []string{"PartialEq"}})
	Register(&mockSynthesizer{name: "PartialOrd", requires: []string{"PartialEq"}})
	Register(&mockSynthesizer{name: "Ord", requires: []string{"Eq", "PartialOrd"}})

	tests := []struct {
		requested []string
		want      []string
	}{
		{[]string{"Ord"}, []string{"Eq", "PartialEq", "PartialOrd"}},
		{[]string{"Ord", "PartialOrd", "Eq", "PartialEq"}, nil},
		{[]string{"Eq", "Unknown"}, []string{"PartialEq"}},
		{nil, nil},
	}
	for _, tt := range tests {
		got := Missing(tt.requested)
		if len(got) != len(tt.want) {
			t.Errorf("Missing(%v) = %v, want %v", tt.requested, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Missing(%v) = %v, want %v", tt.requested, got, tt.want)
				break
			}
		}
	}
}

func TestConfig_Option(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"eq.checker": "off",
		},
	}

	if got := cfg.Option("eq.checker", "on"); got != "off" {
		t.Errorf("got %q, want %q", got, "off")
	}

	if got := cfg.Option("missing", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestOutput(t *testing.T) {
	t.Run("NewOutput and Add", func(t *testing.T) {
		out := NewOutput()
		out.Add(&rust.Raw{Lines: []string{"a"}}, &rust.Raw{Lines: []string{"b"}})

		if out.Len() != 2 {
			t.Fatalf("got %d items, want 2", out.Len())
		}
	})

	t.Run("Single", func(t *testing.T) {
		out := Single(&rust.CompileError{Message: "x"})

		if out.Len() != 1 {
			t.Fatalf("got %d items, want 1", out.Len())
		}
	})
}
