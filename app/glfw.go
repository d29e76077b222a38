// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package app

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// BindGLFW sets the callbacks of the given glfw window to
// the event handlers of the App.
func BindGLFW(a *App, w *glfw.Window) {
	w.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		a.Resized(image.Point{width, height})
	})
	w.SetKeyCallback(func(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
		if action == glfw.Press {
			a.KeyPressed(GLFWKey(ky))
		}
	})
	w.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		sx, sy := pixelRatio(gw)
		a.CursorMoved(x*sx, y*sy)
	})
	w.SetCloseCallback(func(gw *glfw.Window) {
		a.CloseRequested()
	})
	w.SetRefreshCallback(func(gw *glfw.Window) {
		a.RedrawRequested()
	})
}

// GLFWKey returns the [Key] for the given glfw key.
func GLFWKey(ky glfw.Key) Key {
	switch ky {
	case glfw.KeyEscape:
		return KeyEscape
	}
	return KeyUnknown
}

// pixelRatio returns the ratio of framebuffer pixels to window
// coordinates, which glfw reports cursor positions in.
func pixelRatio(gw *glfw.Window) (sx, sy float64) {
	fw, fh := gw.GetFramebufferSize()
	ww, wh := gw.GetSize()
	return ratio(fw, ww), ratio(fh, wh)
}

func ratio(pixels, coords int) float64 {
	if coords <= 0 || pixels <= 0 {
		return 1
	}
	return float64(pixels) / float64(coords)
}
