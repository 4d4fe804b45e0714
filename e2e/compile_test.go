// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated code is valid and compilable.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"go":    "Go is required. Install from https://go.dev/dl/",
	"rustc": "rustc is required. Install: https://rustup.rs/",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// compileDescriptor derives every kind of trait the default build supports.
const compileDescriptor = `items:
  - kind: struct
    vis: pub
    name: Money
    attrs:
      - "#[derive_ex(Clone, Copy, Debug, Default, PartialEq, Eq, PartialOrd, Ord, Hash)]"
      - "#[derive_ex(Add, AddAssign, Sub, SubAssign, Neg)]"
    fields:
      list:
        - vis: pub
          name: units
          type: i64
          attrs:
            - "#[ord(reverse)]"
        - vis: pub
          name: cents
          type: i64
  - kind: struct
    vis: pub
    name: Wrapper
    generics:
      params:
        - name: T
    attrs:
      - "#[derive_ex(Clone, Debug, Deref, DerefMut, PartialEq, Eq)]"
    fields:
      list:
        - vis: pub
          type: Vec<T>
          attrs:
            - "#[debug(transparent)]"
  - kind: enum
    vis: pub
    name: Shape
    attrs:
      - "#[derive_ex(Clone, Debug, Default, PartialEq, Eq, PartialOrd, Ord, Hash)]"
    variants:
      - name: Circle
        fields:
          list:
            - name: radius
              type: u32
      - name: Square
        fields:
          list:
            - type: u32
      - name: Empty
        attrs:
          - "#[default]"
`

// TestRustOutputCompiles verifies that generated Rust code type-checks.
func TestRustOutputCompiles(t *testing.T) {
	requireTool(t, "rustc")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, inputFile)
	if err := os.WriteFile(input, []byte(compileDescriptor), 0o644); err != nil {
		t.Fatalf("write %s: %v", inputFile, err)
	}

	outputFile := filepath.Join(tmpDir, "lib.rs")
	cmd := exec.CommandContext(ctx, binary, "expand", "-o", outputFile, input)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("derivex expand: %v\n%s", err, stderr.String())
	}

	t.Run("rustc", func(t *testing.T) {
		start := time.Now()
		cmd := exec.CommandContext(ctx, "rustc",
			"--edition", "2021",
			"--crate-type", "lib",
			"--emit", "metadata",
			"--out-dir", tmpDir,
			outputFile,
		)
		output, err := cmd.CombinedOutput()
		if err != nil {
			src, _ := os.ReadFile(outputFile)
			t.Logf("generated:\n%s", src)
			t.Logf("rustc output:\n%s", output)
			t.Fatalf("rustc failed: %v", err)
		}
		t.Logf("rustc: %v", time.Since(start))
	})
}

// behaviorDescriptor covers the run-time properties checked by
// behaviorMain.
const behaviorDescriptor = `items:
  - kind: struct
    name: Version
    attrs:
      - "#[derive_ex(Clone, Debug, Default, PartialEq, Eq, PartialOrd, Ord, Hash)]"
    fields:
      list:
        - name: major
          type: u32
        - name: minor
          type: u32
  - kind: struct
    name: Rev
    attrs:
      - "#[derive_ex(PartialEq, Eq, PartialOrd, Ord)]"
    fields:
      list:
        - name: a
          type: u32
          attrs:
            - "#[ord(reverse)]"
        - name: b
          type: u32
  - kind: enum
    name: Level
    attrs:
      - "#[derive_ex(Clone, Debug, PartialEq, Eq, PartialOrd, Ord)]"
    variants:
      - name: Low
      - name: Mid
        fields:
          list:
            - type: u8
      - name: High
        fields:
          list:
            - name: v
              type: u8
  - kind: struct
    name: Name
    attrs:
      - "#[derive_ex(PartialEq, Eq, Hash)]"
    fields:
      list:
        - name: s
          type: String
          attrs:
            - "#[eq(key = $.len())]"
  - kind: struct
    name: Tagged
    attrs:
      - "#[derive_ex(PartialEq, Eq, Hash)]"
    fields:
      list:
        - name: id
          type: u32
        - name: note
          type: String
          attrs:
            - "#[eq(ignore)]"
  - kind: struct
    name: Buf
    attrs:
      - "#[derive_ex(Clone)]"
    fields:
      list:
        - name: data
          type: Vec<u8>
  - kind: struct
    name: Conf
    attrs:
      - "#[derive_ex(Default)]"
    fields:
      list:
        - name: n
          type: u32
          attrs:
            - "#[default(8)]"
        - name: s
          type: String
          attrs:
            - '#[default("x")]'
        - name: v
          type: Vec<u8>
  - kind: struct
    name: Opt
    generics:
      params:
        - name: T
    attrs:
      - "#[derive_ex(Default)]"
    fields:
      list:
        - name: v
          type: Option<T>
  - kind: struct
    name: P
    attrs:
      - "#[derive_ex(Clone, Debug, PartialEq, Add, AddAssign, Neg)]"
    fields:
      list:
        - name: x
          type: i32
        - name: y
          type: i32
  - kind: struct
    name: Q
    attrs:
      - "#[derive_ex(Clone, Debug, PartialEq)]"
    fields:
      list:
        - type: i32
  - kind: impl
    attrs:
      - "#[derive_ex(SubAssign)]"
    impl:
      trait: Sub
      self: Q
      items:
        - kind: type
          name: Output
          type: Q
        - kind: fn
          name: sub
          text: |-
            fn sub(self, rhs: Q) -> Q {
                Q(self.0 - rhs.0)
            }
`

// behaviorPrelude makes the hand-written impls of the descriptor resolve.
const behaviorPrelude = `use std::collections::hash_map::DefaultHasher;
use std::hash::{Hash, Hasher};
use std::ops::*;

`

const behaviorMain = `
fn hash_of<T: Hash>(v: &T) -> u64 {
    let mut h = DefaultHasher::new();
    v.hash(&mut h);
    h.finish()
}

struct NoDefault;

fn main() {
    // Fields compare in declaration order.
    let a = Version { major: 1, minor: 9 };
    let b = Version { major: 2, minor: 0 };
    assert!(a < b);
    assert_eq!(a.cmp(&b), std::cmp::Ordering::Less);
    assert_eq!(a.partial_cmp(&b), Some(std::cmp::Ordering::Less));
    assert_eq!(Version::default(), Version { major: 0, minor: 0 });
    assert_eq!(format!("{:?}", a), "Version { major: 1, minor: 9 }");
    assert_eq!(hash_of(&a), hash_of(&a.clone()));

    // reverse flips one field only.
    assert!(Rev { a: 2, b: 0 } < Rev { a: 1, b: 0 });
    assert!(Rev { a: 1, b: 0 } < Rev { a: 1, b: 1 });
    assert_eq!(Rev { a: 2, b: 0 }.partial_cmp(&Rev { a: 1, b: 0 }), Some(std::cmp::Ordering::Less));

    // Variants order by declaration, then by fields.
    assert!(Level::Low < Level::Mid(0));
    assert!(Level::Mid(9) < Level::High { v: 0 });
    assert!(Level::Mid(1) < Level::Mid(2));
    assert_eq!(Level::Mid(3).clone(), Level::Mid(3));

    // Hash agrees with the key Eq compares.
    let x = Name { s: "ab".to_string() };
    let y = Name { s: "cd".to_string() };
    assert!(x == y);
    assert_eq!(hash_of(&x), hash_of(&y));
    assert!(x != Name { s: "abc".to_string() });

    // Ignored fields take part in neither Eq nor Hash.
    let t1 = Tagged { id: 1, note: "a".to_string() };
    let t2 = Tagged { id: 1, note: "b".to_string() };
    assert!(t1 == t2);
    assert_eq!(hash_of(&t1), hash_of(&t2));
    assert!(t1 != Tagged { id: 2, note: "a".to_string() });

    let src = Buf { data: vec![1, 2, 3] };
    let mut dst = Buf { data: Vec::with_capacity(8) };
    dst.clone_from(&src);
    assert_eq!(dst.data, src.data);
    assert_eq!(src.clone().data, src.data);

    let c = Conf::default();
    assert_eq!(c.n, 8);
    assert_eq!(c.s, "x");
    assert!(c.v.is_empty());

    // Option<T> is Default for any T.
    let o: Opt<NoDefault> = Opt::default();
    assert!(o.v.is_none());

    let p = P { x: 1, y: 2 };
    let q = P { x: 3, y: 4 };
    assert_eq!(&p + &q, P { x: 4, y: 6 });
    assert_eq!(p.clone() + q.clone(), P { x: 4, y: 6 });
    let mut r = p.clone();
    r += &q;
    assert_eq!(r, P { x: 4, y: 6 });
    assert_eq!(-p, P { x: -1, y: -2 });

    let mut m = Q(10);
    m -= Q(3);
    assert_eq!(m, Q(7));
}
`

// TestRustOutputRuns compiles generated code together with assertions on
// its behavior and runs it.
func TestRustOutputRuns(t *testing.T) {
	requireTool(t, "rustc")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, inputFile)
	if err := os.WriteFile(input, []byte(behaviorDescriptor), 0o644); err != nil {
		t.Fatalf("write %s: %v", inputFile, err)
	}

	cmd := exec.CommandContext(ctx, binary, "expand", input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("derivex expand: %v\n%s", err, stderr.String())
	}

	mainFile := filepath.Join(tmpDir, "main.rs")
	src := behaviorPrelude + stdout.String() + behaviorMain
	if err := os.WriteFile(mainFile, []byte(src), 0o644); err != nil {
		t.Fatalf("write main.rs: %v", err)
	}

	exe := filepath.Join(tmpDir, "behavior")
	output, err := exec.CommandContext(ctx, "rustc", "--edition", "2021", "-o", exe, mainFile).CombinedOutput()
	if err != nil {
		t.Logf("generated:\n%s", src)
		t.Logf("rustc output:\n%s", output)
		t.Fatalf("rustc failed: %v", err)
	}

	output, err = exec.CommandContext(ctx, exe).CombinedOutput()
	if err != nil {
		t.Logf("output:\n%s", output)
		t.Fatalf("assertions failed: %v", err)
	}
}

// TestMinimalBuild verifies that the derivex_minimal tag leaves the
// operator synthesizers out.
func TestMinimalBuild(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	binaryPath := filepath.Join(t.TempDir(), "derivex")
	if err := buildBinary(ctx, binaryPath, "derivex_minimal"); err != nil {
		t.Fatalf("build binary: %v", err)
	}

	output, err := exec.CommandContext(ctx, binaryPath, "list").Output()
	if err != nil {
		t.Fatalf("derivex list: %v", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		if strings.HasPrefix(line, "Add ") || strings.HasPrefix(line, "Neg ") {
			t.Errorf("operator listed in minimal build: %q", line)
		}
	}
	if !bytes.Contains(output, []byte("::core::clone::Clone")) {
		t.Errorf("Clone missing from minimal build:\n%s", output)
	}
}
