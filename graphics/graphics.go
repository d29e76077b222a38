// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphics has the graphics context that draws the
// pentagon mesh into a window, cleared to a color that
// follows the cursor.
package graphics

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/pentagon/assets"
	"cogentcore.org/pentagon/config"
	"cogentcore.org/pentagon/gpu"
	"cogentcore.org/pentagon/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the part of a window used by the graphics context.
// It is shared with the application shell, which handles its events.
type Window interface {
	// SurfaceDescriptor returns the descriptor to create
	// a WebGPU surface on the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// FramebufferSize returns the size of the window in pixels.
	FramebufferSize() image.Point
}

// Graphics owns all of the GPU state used to draw the mesh.
// It is created once with [New], after which only [Graphics.Resize]
// and [Graphics.CursorMoved] change it.
type Graphics struct {
	// Window is the window drawn into.
	Window Window

	GPU     *gpu.GPU
	Device  *gpu.Device
	Surface *gpu.Surface
	System  *gpu.GraphicsSystem

	// Pipeline draws the mesh with the textured or the flat shader.
	Pipeline *gpu.GraphicsPipeline

	// Texture, Sampler and Group are nil for the flat shader.
	Texture *gpu.Texture
	Sampler *gpu.Sampler
	Group   *gpu.TextureGroup

	Vertices *gpu.Buffer
	Indices  *gpu.Buffer
}

// New initializes the graphics context for the given window,
// in order: instance, surface, adapter, device and queue, surface
// configuration at the window size, pipeline, texture and bind
// group (if textured), and the mesh buffers.
// The first failing step is returned, and everything created
// up to that point is released.
func New(win Window, cfg *config.Config) (*Graphics, error) {
	gpu.Debug = cfg.Debug
	gr := &Graphics{Window: win}
	if err := gr.init(cfg); err != nil {
		gr.Release()
		return nil, err
	}
	slog.Debug("graphics: initialized", "size", gr.Size(), "format", gr.Surface.Format.String(), "textured", cfg.Textured)
	return gr, nil
}

func (gr *Graphics) init(cfg *config.Config) error {
	pp, err := cfg.WGPUPowerPreference()
	if err != nil {
		return err
	}
	pm, err := cfg.WGPUPresentMode()
	if err != nil {
		return err
	}
	clr, err := cfg.Color()
	if err != nil {
		return err
	}

	gr.GPU = gpu.NewGPU(cfg.Title)
	gr.Surface = gpu.NewSurface(gr.GPU, gr.Window.SurfaceDescriptor())
	err = gr.GPU.SelectAdapter(gr.Surface.WGPU(), gpu.AdapterOptions{PowerPreference: pp, ForceFallback: cfg.ForceFallbackAdapter})
	if err != nil {
		return err
	}
	gr.Device, err = gpu.NewDevice(gr.GPU)
	if err != nil {
		return err
	}

	gr.Surface.PresentMode = pm
	if err := gr.Surface.Init(gr.Device, gr.Window.FramebufferSize()); err != nil {
		return fmt.Errorf("graphics: surface configuration: %w", err)
	}
	gr.Surface.Configure()

	gr.System = gpu.NewGraphicsSystem(cfg.Title, gr.Surface)
	gr.System.SetClearColor(gpu.ColorToWGPU(clr))

	if cfg.Textured {
		if err := gr.configTexture(); err != nil {
			return fmt.Errorf("graphics: texture: %w", err)
		}
	}
	if err := gr.configPipeline(cfg.Textured); err != nil {
		return fmt.Errorf("graphics: pipeline: %w", err)
	}
	if err := gr.configMesh(); err != nil {
		return fmt.Errorf("graphics: mesh: %w", err)
	}
	return nil
}

// configTexture uploads the bundled texture, and makes its
// sampler and bind group.
func (gr *Graphics) configTexture() error {
	img, err := assets.OpenTexture()
	if err != nil {
		return err
	}
	gr.Texture = gpu.NewTexture(assets.Texture, gr.Device)
	gr.Texture.MaxSize = gr.Device.MaxTextureSize()
	if err := gr.Texture.SetFromGoImage(img); err != nil {
		return err
	}
	gr.Sampler = gpu.NewSampler(assets.Texture)
	if err := gr.Sampler.Config(gr.Device); err != nil {
		return err
	}
	gr.Group, err = gpu.NewTextureGroup(gr.Device, "diffuse_bind_group", 0, gr.Texture, gr.Sampler)
	return err
}

// configPipeline makes the pipeline for the textured or the flat shader.
// Its primitive state matches the WebGPU defaults: no culling.
func (gr *Graphics) configPipeline(textured bool) error {
	pl := gr.System.AddGraphicsPipeline("render")
	pl.SetCullMode(wgpu.CullModeNone)
	sh := pl.AddShader(assets.ShaderName(textured))
	sh.OpenCode(assets.Shader(textured))
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")
	pl.VertexLayouts = []wgpu.VertexBufferLayout{mesh.Layout()}
	if gr.Group != nil {
		pl.BindGroupLayouts = []*wgpu.BindGroupLayout{gr.Group.Layout()}
	}
	gr.Pipeline = pl
	return gr.System.Config()
}

// configMesh uploads the vertices and indices.
func (gr *Graphics) configMesh() error {
	if err := mesh.Validate(mesh.Vertices, mesh.Indices); err != nil {
		return err
	}
	var err error
	gr.Vertices, err = gpu.NewBuffer(gr.Device, "Vertex Buffer", wgpu.BufferUsageVertex, gpu.UndefinedType, len(mesh.Vertices), mesh.VertexBytes(mesh.Vertices))
	if err != nil {
		return err
	}
	gr.Indices, err = gpu.NewBuffer(gr.Device, "Index Buffer", wgpu.BufferUsageIndex, mesh.IndexType, len(mesh.Indices), mesh.IndexBytes(mesh.Indices))
	return err
}

// Resize reconfigures the surface for the given size, clamped
// to at least 1x1.
func (gr *Graphics) Resize(size image.Point) {
	gr.System.SetSize(size)
	if gpu.Debug {
		slog.Info("graphics: resized", "size", gr.Size())
	}
}

// Size returns the configured size of the surface.
func (gr *Graphics) Size() image.Point {
	return gr.Surface.Format.Size
}

// Color returns the current clear color.
func (gr *Graphics) Color() wgpu.Color {
	return gr.System.Render.ClearColor
}

// CursorColor returns the clear color for the cursor at x, y in
// a surface of the given size: red and green are x and y relative
// to the size, without clamping, and blue and alpha are 1.
func CursorColor(x, y float64, size image.Point) wgpu.Color {
	size = gpu.ClampSize(size)
	return wgpu.Color{R: x / float64(size.X), G: y / float64(size.Y), B: 1, A: 1}
}

// CursorMoved sets the clear color for the cursor at x, y in pixels.
func (gr *Graphics) CursorMoved(x, y float64) {
	gr.System.SetClearColor(CursorColor(x, y, gr.Size()))
}

// Draw renders one frame: it clears the next surface texture to
// the clear color, draws all of the indices once, and presents it.
func (gr *Graphics) Draw() error {
	rp, err := gr.System.BeginRenderPass()
	if err != nil {
		return err
	}
	if err := gr.Pipeline.BindPipeline(rp); err != nil {
		gr.System.CancelRenderPass(rp)
		return err
	}
	if gr.Group != nil {
		gr.Group.Bind(rp)
	}
	gr.Vertices.SetVertex(rp, 0)
	gr.Indices.SetIndex(rp)
	rp.DrawIndexed(uint32(gr.Indices.N), 1, 0, 0, 0)
	return gr.System.EndRenderPass(rp)
}

// Release releases all of the GPU state, in reverse order of creation.
func (gr *Graphics) Release() {
	if gr.Device != nil {
		gr.Device.WaitDone()
	}
	for _, b := range []*gpu.Buffer{gr.Indices, gr.Vertices} {
		if b != nil {
			b.Release()
		}
	}
	if gr.System != nil {
		gr.System.Release()
	}
	if gr.Group != nil {
		gr.Group.Release()
	}
	if gr.Sampler != nil {
		gr.Sampler.Release()
	}
	if gr.Texture != nil {
		gr.Texture.Release()
	}
	if gr.Surface != nil {
		gr.Surface.Release()
	}
	if gr.Device != nil {
		gr.Device.Release()
	}
	if gr.GPU != nil {
		gr.GPU.Release()
	}
}
