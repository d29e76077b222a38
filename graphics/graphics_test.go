// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"image"
	"testing"

	"cogentcore.org/pentagon/config"
	"cogentcore.org/pentagon/gpu"
	"cogentcore.org/pentagon/mesh"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorColor(t *testing.T) {
	size := image.Point{800, 600}
	assert.Equal(t, wgpu.Color{R: 0, G: 0, B: 1, A: 1}, CursorColor(0, 0, size))
	assert.Equal(t, wgpu.Color{R: 1, G: 1, B: 1, A: 1}, CursorColor(800, 600, size))
	assert.Equal(t, wgpu.Color{R: 0.5, G: 0.5, B: 1, A: 1}, CursorColor(400, 300, size))

	out := CursorColor(1600, -300, size)
	assert.Equal(t, 2.0, out.R)
	assert.Equal(t, -0.5, out.G)
	assert.Equal(t, 1.0, out.B)
	assert.Equal(t, 1.0, out.A)

	// full float64 precision
	third := CursorColor(100, 200, image.Point{300, 600})
	assert.Equal(t, 1.0/3.0, third.R)
	assert.Equal(t, 1.0/3.0, third.G)

	// a zero size is treated as 1x1
	assert.Equal(t, wgpu.Color{R: 3, G: 2, B: 1, A: 1}, CursorColor(3, 2, image.Point{}))
}

type badWindow struct{}

func (badWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (badWindow) FramebufferSize() image.Point               { return image.Point{} }

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.PowerPreference = "max"
	gr, err := New(badWindow{}, cfg)
	assert.Error(t, err)
	assert.Nil(t, gr)

	cfg = config.New()
	cfg.ClearColor = "nope"
	_, err = New(badWindow{}, cfg)
	assert.Error(t, err)
}

func TestGraphicsDraw(t *testing.T) {
	t.Skip("Need software GPU on CI")
	win, err := gpu.GLFWCreateWindow(image.Point{800, 600}, "test")
	require.NoError(t, err)
	defer win.Terminate()

	for _, textured := range []bool{true, false} {
		cfg := config.New()
		cfg.Textured = textured
		gr, err := New(win, cfg)
		require.NoError(t, err)
		assert.Equal(t, wgpu.Color{R: 0, G: 1, B: 0, A: 1}, gr.Color())
		assert.Equal(t, textured, gr.Group != nil)
		assert.Equal(t, len(mesh.Indices), gr.Indices.N)
		require.NoError(t, gr.Draw())

		gr.Resize(image.Point{0, 0})
		assert.Equal(t, image.Point{1, 1}, gr.Size())
		require.NoError(t, gr.Draw())

		gr.Resize(image.Point{800, 600})
		gr.CursorMoved(400, 300)
		assert.Equal(t, wgpu.Color{R: 0.5, G: 0.5, B: 1, A: 1}, gr.Color())
		require.NoError(t, gr.Draw())
		gr.Release()
	}
}
