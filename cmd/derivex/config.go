// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/derivex/generator"
	"github.com/albertocavalcante/derivex/internal/errors"
)

const configName = "derivex.toml"

// Configuration keys. Environment variables use the DERIVEX_ prefix with
// dots replaced, e.g. DERIVEX_LOG_LEVEL.
const (
	keyOutput   = "output"
	keyDump     = "dump"
	keyWorkers  = "workers"
	keyOptions  = "options"
	keyLogLevel = "log.level"
	keyLogJSON  = "log.json"
)

// flagKeys maps flag names to the keys they override.
var flagKeys = map[string]string{
	"output":    keyOutput,
	"dump":      keyDump,
	"workers":   keyWorkers,
	"option":    keyOptions,
	"log-level": keyLogLevel,
	"log-json":  keyLogJSON,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyOutput, "")
	v.SetDefault(keyDump, false)
	v.SetDefault(keyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(keyOptions, []string{})
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogJSON, false)
}

// loadConfig layers defaults, the configuration file, the environment and
// the flags of cmd, lowest first.
func loadConfig(v *viper.Viper, path string, cmd *cobra.Command) error {
	setDefaults(v)

	v.SetEnvPrefix("DERIVEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = findConfig()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

// findConfig returns the nearest derivex.toml from the working directory
// up to the filesystem root, or "".
func findConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		p := filepath.Join(dir, configName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// engineConfig returns the synthesis options resolved by v.
func engineConfig(v *viper.Viper) (generator.Config, error) {
	cfg := generator.Config{
		Dump:    v.GetBool(keyDump),
		Options: map[string]string{},
	}
	for _, o := range v.GetStringSlice(keyOptions) {
		key, value, ok := strings.Cut(o, "=")
		if !ok || key == "" {
			return cfg, errors.WithHint(
				errors.Newf("invalid option %q", o),
				"options are written key=value, e.g. eq.checker=off")
		}
		cfg.Options[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, nil
}
