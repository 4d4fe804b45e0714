// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command derivex expands `#[derive_ex(...)]` requests of item
// descriptors into Rust trait impls.
//
// Usage:
//
//	derivex expand [flags] file...
//	derivex list
//	derivex version
//
// Flags of expand:
//
//	-o, --output     Output file (default: stdout)
//	-j, --workers    Files expanded in parallel (default: number of CPUs)
//	-O, --option     Synthesizer option key=value, repeatable
//	--dump           Report the generated code as diagnostics
//
// Global flags:
//
//	--config         Configuration file (default: derivex.toml, searched upward)
//	--log-level      debug, info, warn or error (default: warn)
//	--log-json       Log as JSON
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/logger"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errReported means diagnostics were already printed.
var errReported = errors.New("diagnostics reported")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(viper.New())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "derivex",
		Short: "derivex - trait impl synthesis for Rust items",
		Long: `derivex - trait impl synthesis for Rust items.

Reads item descriptors (YAML, JSON or TOML) carrying #[derive_ex(...)]
requests and prints each item followed by the synthesized impls.

Examples:
  derivex expand point.yaml            # Print to stdout
  derivex expand -o out.rs *.yaml      # Expand several files into one
  derivex expand -O eq.checker=off x.yaml
  derivex list                         # Show available traits`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, configPath, cmd); err != nil {
				return err
			}
			if err := logger.Initialize(v.GetString(keyLogLevel), v.GetBool(keyLogJSON)); err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Configuration file (default: "+configName+" searched upward)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.Bool("log-json", false, "Log as JSON")

	root.AddCommand(newExpandCmd(v), newListCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "derivex %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
