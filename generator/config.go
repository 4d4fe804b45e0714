// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Config contains synthesizer configuration.
type Config struct {
	// Dump forces the dump diagnostic for every request.
	Dump bool

	// Options contains synthesizer-specific options.
	Options map[string]string
}

// Option returns a synthesizer-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
