// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app has the application shell, which creates the
// graphics context once and dispatches window events to it.
package app

import (
	"context"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/pentagon/gpu"
)

// Context is the graphics context driven by the [App].
type Context interface {
	// Resize reconfigures for the given size in pixels.
	Resize(size image.Point)

	// Draw renders one frame.
	Draw() error

	// CursorMoved is called with the cursor position in pixels.
	CursorMoved(x, y float64)

	// Release releases all resources.
	Release()
}

// Window is the window the [App] runs in.
type Window interface {
	// FramebufferSize returns the size of the window in pixels.
	FramebufferSize() image.Point

	// PollEvents processes pending events, calling the [App]
	// event handlers, and returns false if the window closed.
	PollEvents() bool
}

// Init creates the graphics context.
type Init func() (Context, error)

type initResult struct {
	ctx Context
	err error
}

// App is the application shell. It is [Initializing] until the
// graphics context made by the [Init] function given to
// [App.Resume] is delivered, and [Ready] from then on.
// All methods must be called from the same goroutine,
// except for the [Init] function when run by Spawn.
type App struct {
	// Window is the window used to get the size when becoming Ready.
	Window Window

	// FPS is the maximum number of frames per second drawn by
	// [App.Run]. 0 means as fast as presentation allows.
	FPS int

	// Spawn runs the Init function. The default runs it
	// immediately, blocking until the context is made.
	Spawn func(f func())

	state State

	// initC delivers the context made by Init, exactly once.
	initC chan initResult

	resumed bool
	ctx     Context

	// needsRedraw is set when a frame should be drawn.
	needsRedraw bool
	exited      bool
	err         error
}

// New returns a new App in the [Initializing] state.
func New(win Window) *App {
	return &App{
		Window: win,
		Spawn:  func(f func()) { f() },
		initC:  make(chan initResult, 1),
	}
}

// State returns the current state.
func (a *App) State() State {
	return a.state
}

// Context returns the graphics context, nil until [Ready].
func (a *App) Context() Context {
	return a.ctx
}

// Exited returns true once exit has been requested.
func (a *App) Exited() bool {
	return a.exited
}

// Err returns the fatal error that ended the App, if any.
func (a *App) Err() error {
	return a.err
}

// Resume starts making the graphics context with the given
// function, through Spawn. Only the first call has any effect.
func (a *App) Resume(initFn Init) {
	if a.resumed || a.state != Initializing {
		return
	}
	a.resumed = true
	initC := a.initC
	a.Spawn(func() {
		ctx, err := initFn()
		initC <- initResult{ctx: ctx, err: err}
	})
}

// Poll becomes [Ready] if the graphics context has been delivered,
// without blocking. It returns the error from Init, which is fatal.
func (a *App) Poll() error {
	if a.state != Initializing || a.err != nil {
		return a.err
	}
	select {
	case r := <-a.initC:
		return a.deliver(r)
	default:
		return nil
	}
}

// Await blocks until the graphics context has been delivered, or
// the given context is done. It returns the error from Init.
func (a *App) Await(ctx context.Context) error {
	if a.state != Initializing || a.err != nil {
		return a.err
	}
	select {
	case r := <-a.initC:
		return a.deliver(r)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) deliver(r initResult) error {
	if r.err != nil {
		a.fail(r.err)
		return r.err
	}
	a.ctx = r.ctx
	a.state = Ready
	slog.Debug("app: ready")
	if a.Window != nil {
		a.Resized(a.Window.FramebufferSize())
	}
	a.needsRedraw = true
	return nil
}

// fail records a fatal error and exits.
func (a *App) fail(err error) {
	if a.err == nil {
		a.err = err
	}
	a.Exit()
}

// Exit requests the App to stop running.
func (a *App) Exit() {
	a.exited = true
}

// Resized reconfigures the context for the given size, clamped to
// at least 1x1.
func (a *App) Resized(size image.Point) {
	if a.state != Ready {
		return
	}
	a.ctx.Resize(gpu.ClampSize(size))
	a.needsRedraw = true
}

// RedrawRequested draws a frame, and requests another one.
// A draw error is fatal.
func (a *App) RedrawRequested() error {
	if a.state != Ready || a.exited {
		return nil
	}
	if err := a.ctx.Draw(); err != nil {
		a.fail(err)
		return err
	}
	a.needsRedraw = true
	return nil
}

// KeyPressed handles a key press: Escape exits.
func (a *App) KeyPressed(k Key) {
	if k == KeyEscape {
		slog.Debug("app: exit", "key", k)
		a.Exit()
	}
}

// CursorMoved passes the cursor position in pixels to the context.
func (a *App) CursorMoved(x, y float64) {
	if a.state != Ready {
		return
	}
	a.ctx.CursorMoved(x, y)
}

// CloseRequested handles the window close button, which exits.
func (a *App) CloseRequested() {
	slog.Debug("app: exit", "reason", "close requested")
	a.Exit()
}

// Run runs the event loop: it polls the window events, delivers
// the graphics context once ready, and draws frames, limited to
// FPS when it is > 0. It returns when exit has been requested,
// the window closes, or ctx is done, with any fatal error.
func (a *App) Run(ctx context.Context, win Window) error {
	var tick <-chan time.Time
	if a.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(a.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}
	for !a.exited {
		if !win.PollEvents() {
			a.CloseRequested()
			break
		}
		if err := a.Poll(); err != nil {
			return err
		}
		if a.needsRedraw {
			a.needsRedraw = false
			if err := a.RedrawRequested(); err != nil {
				return err
			}
		}
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
	return a.err
}

// Release releases the graphics context, if any.
func (a *App) Release() {
	if a.ctx != nil {
		a.ctx.Release()
		a.ctx = nil
	}
}
