// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes the windowing system, using glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWWindow is a desktop window created with glfw, without any
// client graphics API, so that WebGPU can render to it.
type GLFWWindow struct {
	Window *glfw.Window
}

// GLFWCreateWindow initializes glfw and makes a new resizable window
// with the given size and title.
// IMPORTANT: must be called on the main initial thread!
func GLFWCreateWindow(size image.Point, title string) (*GLFWWindow, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	size = ClampSize(size)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		Terminate()
		return nil, errors.Log(err)
	}
	return &GLFWWindow{Window: window}, nil
}

// SurfaceDescriptor returns the descriptor for creating
// a WebGPU surface on the window.
func (w *GLFWWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Window)
}

// FramebufferSize returns the current size of the window in pixels,
// which can differ from the window size on high-DPI displays.
func (w *GLFWWindow) FramebufferSize() image.Point {
	width, height := w.Window.GetFramebufferSize()
	return image.Point{width, height}
}

// PollEvents processes pending window events, which calls
// the window callbacks. It returns false once the window
// has been asked to close.
func (w *GLFWWindow) PollEvents() bool {
	glfw.PollEvents()
	return !w.Window.ShouldClose()
}

// Terminate destroys the window and shuts down glfw.
func (w *GLFWWindow) Terminate() {
	w.Window.Destroy()
	Terminate()
}
