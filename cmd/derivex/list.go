// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/attr"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the traits this build can synthesize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TRAIT\tFAMILY\tPATH\tFROM IMPL\tDESCRIPTION")
			// Emission order, not registration order.
			for _, k := range attr.Kinds() {
				s, ok := generator.Lookup(k)
				if !ok {
					continue
				}
				md := s.Metadata()
				fromImpl := "-"
				if md.FromImpl {
					fromImpl = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", md.Name, md.Family, md.Trait, fromImpl, md.Description)
			}
			return w.Flush()
		},
	}
}
