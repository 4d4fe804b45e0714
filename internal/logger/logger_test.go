// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	defer Use(zap.NewNop())

	require.NoError(t, Initialize("debug", false))
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize("warn", true))
	assert.False(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))

	assert.Error(t, Initialize("loud", false))
}

func TestUse(t *testing.T) {
	defer Use(zap.NewNop())

	core, logs := observer.New(zap.DebugLevel)
	Use(zap.New(core))
	Logger.Debugw("synthesized", "trait", "Clone")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Clone", logs.All()[0].ContextMap()["trait"])
}
