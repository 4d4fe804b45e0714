// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/derivex/internal/errors"
)

const pointYAML = `items:
  - kind: struct
    name: Point
    attrs: ["#[derive_ex(Clone, PartialEq, Eq)]"]
    fields:
      list:
        - name: x
          type: i32
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "derivex dev (commit: unknown, built: unknown)\n", out)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "TRAIT"))
	assert.True(t, strings.HasPrefix(lines[1], "Copy "), "emission order starts with Copy")
	assert.Contains(t, out, "::core::cmp::PartialEq")
	assert.Contains(t, out, "AddAssign")
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "point.yaml", pointYAML)

	out, stderr, err := execute(t, "expand", p)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(out, "struct Point {\n    x: i32,\n}\n"))
	assert.Contains(t, out, "impl ::core::clone::Clone for Point {")
	assert.Contains(t, out, "const _: () = {", "eq checker is on by default")

	out, _, err = execute(t, "expand", "-O", "eq.checker=off", p)
	require.NoError(t, err)
	assert.NotContains(t, out, "const _: () = {")
}

func TestExpand_OutputInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c", "a", "b"} {
		paths = append(paths, writeFile(t, dir, name+".yaml", "items:\n  - kind: struct\n    name: "+strings.ToUpper(name)+"\n"))
	}
	outPath := filepath.Join(dir, "gen", "out.rs")

	_, _, err := execute(t, append([]string{"expand", "-j", "3", "-o", outPath}, paths...)...)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "struct C;\n\nstruct A;\n\nstruct B;\n", string(got))
}

func TestExpand_Diagnostics(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.yaml", `items:
  - kind: struct
    name: X
    attrs:
      - text: "#[derive_ex(Deref)]"
        span: {line: 7, column: 1}
`)
	out, stderr, err := execute(t, "expand", p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
	assert.Equal(t, p+":7:13: `#[derive_ex(Deref)]` supports only single field struct.\n", stderr)
	assert.Contains(t, out, "::core::compile_error!(")
}

func TestExpand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "point.yaml", pointYAML)
	cfg := writeFile(t, dir, "custom.toml", "dump = true\noptions = [\"eq.checker=off\"]\n")

	_, stderr, err := execute(t, "--config", cfg, "expand", p)
	require.Error(t, err)
	assert.Contains(t, stderr, ": dump:\n")
	assert.NotContains(t, stderr, "const _: () = {")
}

func TestExpand_Errors(t *testing.T) {
	_, _, err := execute(t, "expand")
	require.Error(t, err, "at least one file is required")

	_, _, err = execute(t, "expand", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, errReported))

	dir := t.TempDir()
	p := writeFile(t, dir, "point.yaml", pointYAML)
	_, _, err = execute(t, "expand", "-O", "novalue", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid option "novalue"`)
}

func TestEngineConfig(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(keyOptions, []string{"eq.checker = off", "x=1"})
	v.Set(keyDump, true)

	cfg, err := engineConfig(v)
	require.NoError(t, err)
	assert.True(t, cfg.Dump)
	assert.Equal(t, map[string]string{"eq.checker": "off", "x": "1"}, cfg.Options)
}
