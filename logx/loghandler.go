// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger, with the
// level colored when writing to a terminal.
package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// levelColors are the terminal colors of the levels.
var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSICyan,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// Handler is a [slog.Handler] that writes text records like
// [slog.TextHandler], with the level colored according to the
// color profile of the output. The time and level are written
// directly, so that the escape sequences reach the terminal as is;
// the message and attributes are formatted by a text handler.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler

	// text formats the message and attributes into buf.
	text slog.Handler

	// mu guards buf and writes to out, and is shared by all
	// handlers derived with WithAttrs and WithGroup.
	mu  *sync.Mutex
	buf *bytes.Buffer
}

// NewHandler returns a handler writing to w at or above
// the given level, which colors the level according to the
// color profile of w: there is no color if w is not a terminal.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	h := &Handler{
		out:   termenv.NewOutput(w, opts...),
		level: level,
		mu:    &sync.Mutex{},
		buf:   &bytes.Buffer{},
	}
	h.text = slog.NewTextHandler(h.buf, &slog.HandlerOptions{
		Level: slog.LevelDebug - 100,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return h
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	lv := slog.LevelInfo
	if h.level != nil {
		lv = h.level.Level()
	}
	return level >= lv
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	var line bytes.Buffer
	if !r.Time.IsZero() {
		line.WriteString("time=")
		line.WriteString(r.Time.Format(time.RFC3339Nano))
		line.WriteByte(' ')
	}
	line.WriteString("level=")
	line.WriteString(h.levelString(r.Level))
	line.WriteByte(' ')
	line.Write(h.buf.Bytes())
	_, err := h.out.Write(line.Bytes())
	return err
}

// levelString returns the level name styled for the output.
func (h *Handler) levelString(lv slog.Level) string {
	st := h.out.String(lv.String())
	if c, has := levelColors[lv]; has {
		st = st.Foreground(c)
	}
	if lv >= slog.LevelError {
		st = st.Bold()
	}
	return st.String()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// SetDefaultLogger sets the default logger to one writing to
// stderr at the [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}
