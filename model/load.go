// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is a descriptor encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Newf("%s: unknown descriptor extension (want .json, .yaml, .yml or .toml)", path)
}

// Load reads, decodes, normalizes and validates a descriptor file.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read descriptor")
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Parse decodes data in the given format. Unknown keys are errors.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.Newf("unknown format %q", format)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Normalize fills in defaults: field styles inferred from field names and
// lifetime params recognized by their leading quote.
func (f *File) Normalize() {
	for _, it := range f.Items {
		normalizeGenerics(&it.Generics)
		normalizeFields(&it.Fields)
		for _, v := range it.Variants {
			normalizeFields(&v.Fields)
		}
		if it.Impl != nil {
			normalizeGenerics(&it.Impl.Generics)
		}
	}
}

func normalizeGenerics(g *Generics) {
	for _, p := range g.Params {
		if p.Kind == "" {
			if strings.HasPrefix(p.Name, "'") {
				p.Kind = ParamLifetime
			} else {
				p.Kind = ParamType
			}
		}
	}
}

func normalizeFields(fs *Fields) {
	if fs.Style != "" {
		return
	}
	switch {
	case len(fs.List) == 0:
		fs.Style = StyleUnit
	case fs.List[0].Name != "":
		fs.Style = StyleNamed
	default:
		fs.Style = StyleTuple
	}
}
