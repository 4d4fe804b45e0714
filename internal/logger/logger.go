// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logger holds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It discards everything until Initialize runs.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize installs a stderr logger at the named level ("debug", "info",
// "warn", "error"). With jsonOutput the production JSON encoder is used.
func Initialize(level string, jsonOutput bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	Logger = zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl)).Sugar()
	return nil
}

// Use installs l as the global logger, mainly for tests.
func Use(l *zap.Logger) {
	Logger = l.Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger.Sync()
}
