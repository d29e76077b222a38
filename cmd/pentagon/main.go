// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pentagon opens a window and draws a textured pentagon,
// cleared to a color that follows the cursor. Escape quits.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/pentagon/app"
	"cogentcore.org/pentagon/config"
	"cogentcore.org/pentagon/gpu"
	"cogentcore.org/pentagon/graphics"
	"cogentcore.org/pentagon/logx"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load("pentagon", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	logx.UserLevel = logx.LevelFromFlags(cfg != nil && cfg.Debug, false)
	logx.SetDefaultLogger()
	if err != nil {
		fatal("invalid configuration", err)
	}

	win, err := gpu.GLFWCreateWindow(cfg.Size(), cfg.Title)
	if err != nil {
		fatal("could not create window", err)
	}
	defer win.Terminate()

	a := app.New(win)
	a.FPS = cfg.FPS
	app.BindGLFW(a, win.Window)
	defer a.Release()

	a.Resume(func() (app.Context, error) {
		gr, err := graphics.New(win, cfg)
		if err != nil {
			return nil, err
		}
		return gr, nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.Run(ctx, win); err != nil && !errors.Is(err, context.Canceled) {
		a.Release()
		win.Terminate()
		fatal("exiting", err)
	}
}

// fatal logs the error and exits the process.
func fatal(msg string, err error) {
	slog.Error("pentagon: "+msg, "err", err)
	os.Exit(1)
}
