// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, true))
	assert.Equal(t, UserLevel, LevelFromFlags(false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))
	lg.Debug("hidden")
	lg.Warn("resized", "width", 800)
	s := b.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=WARN")
	assert.Contains(t, s, "msg=resized")
	assert.Contains(t, s, "width=800")

	b.Reset()
	lg = slog.New(NewHandler(&b, slog.LevelDebug, termenv.WithProfile(termenv.ANSI)))
	lg.Error("failed")
	s = b.String()
	assert.Contains(t, s, "level=\x1b[31;1mERROR\x1b[0m msg=failed\n")
	assert.NotContains(t, s, `\x1b`)
	assert.NotContains(t, s, `level="`)
}

func TestHandlerAttrs(t *testing.T) {
	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))
	lg.With("window", "main").WithGroup("size").Info("resized", "width", 800)
	assert.Contains(t, b.String(), "level=INFO msg=resized window=main size.width=800\n")
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
