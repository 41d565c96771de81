// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandlerLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	UserLevel = slog.LevelInfo
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Debug("hidden debug message")
	lg.Info("shown info message", "seed", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden debug message")
	assert.Contains(t, out, "shown info message")
	assert.Contains(t, out, "seed=42")
	assert.Contains(t, out, "INFO")
}

func TestDefaultLogger(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	defer func(d *slog.Logger) { slog.SetDefault(d) }(slog.Default())

	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
