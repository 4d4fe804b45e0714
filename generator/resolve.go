// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "slices"

// Missing returns the supertraits, direct or transitive, that the
// synthesizers for requested rely on but that are not themselves in
// requested. Unregistered names are ignored. The result is sorted.
func Missing(requested []string) []string {
	visited := make(map[string]bool)
	for _, name := range requested {
		collectRequires(name, visited)
	}
	var missing []string
	for name := range visited {
		if !slices.Contains(requested, name) {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// collectRequires records every supertrait reachable from name.
func collectRequires(name string, visited map[string]bool) {
	s, ok := Get(name)
	if !ok {
		return
	}
	for _, req := range s.Metadata().Requires {
		if visited[req] {
			continue // Already processed or cycle
		}
		visited[req] = true
		collectRequires(req, visited)
	}
}
