// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/derivex/expand"
	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/errors"
	"github.com/albertocavalcante/derivex/internal/logger"
	"github.com/albertocavalcante/derivex/model"
)

func newExpandCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [flags] file...",
		Short: "Expand the derive_ex requests of descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := engineConfig(v)
			if err != nil {
				return err
			}
			return expandFiles(cmd.Context(), args, expandOptions{
				config:  cfg,
				workers: v.GetInt(keyWorkers),
				output:  v.GetString(keyOutput),
				stdout:  cmd.OutOrStdout(),
				stderr:  cmd.ErrOrStderr(),
			})
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output file (default: stdout)")
	f.IntP("workers", "j", 0, "Files expanded in parallel (default: number of CPUs)")
	f.StringArrayP("option", "O", nil, "Synthesizer option key=value (repeatable)")
	f.Bool("dump", false, "Report the generated code as diagnostics instead of emitting it")
	return cmd
}

type expandOptions struct {
	config  generator.Config
	workers int
	output  string
	stdout  io.Writer
	stderr  io.Writer
}

// expandFiles expands every file concurrently and writes the results in
// argument order. Diagnostics are printed as file:line:col: message.
func expandFiles(ctx context.Context, paths []string, opts expandOptions) error {
	results := make([][]*expand.Result, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.workers, 1))
	for i, path := range paths {
		eg.Go(func() error {
			f, err := model.Load(path)
			if err != nil {
				return err
			}
			rs, err := expand.File(ctx, f, expand.Options{Config: opts.config})
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			logger.Logger.Debugw("expanded file", "file", path, "items", len(rs))
			results[i] = rs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var (
		src      []byte
		reported int
	)
	for i, rs := range results {
		out := expand.Render(rs)
		if len(out) > 0 && len(src) > 0 {
			src = append(src, '\n')
		}
		src = append(src, out...)
		for _, d := range expand.Diagnostics(rs) {
			fmt.Fprintf(opts.stderr, "%s:%s: %s\n", paths[i], d.Span, d.Message)
			reported++
		}
	}

	if err := write(opts, src); err != nil {
		return err
	}
	if reported > 0 {
		return errReported
	}
	return nil
}

func write(opts expandOptions, src []byte) error {
	if opts.output == "" {
		_, err := opts.stdout.Write(src)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	logger.Logger.Infow("wrote output", "path", opts.output, "bytes", len(src))
	return nil
}
