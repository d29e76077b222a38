// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsSystem manages a system of GraphicsPipelines that all
// render to a common Surface.
// The System provides a simple top-level API for the whole
// render process.
type GraphicsSystem struct {
	// optional name of this GraphicsSystem
	Name string

	// GraphicsPipelines by name
	GraphicsPipelines map[string]*GraphicsPipeline

	// Surface is the rendering target for this system.
	Surface *Surface

	// Render has the render pass settings, including the clear color.
	Render Render

	// CommandEncoder is the command encoder created in
	// [GraphicsSystem.BeginRenderPass], and released in [GraphicsSystem.EndRenderPass].
	CommandEncoder *wgpu.CommandEncoder

	// logical device for this GraphicsSystem, from the Surface.
	device *Device
}

// NewGraphicsSystem returns a new GraphicsSystem, using
// the given configured Surface as the render target.
func NewGraphicsSystem(name string, sf *Surface) *GraphicsSystem {
	sy := &GraphicsSystem{Name: name, Surface: sf, device: sf.Device}
	sy.GraphicsPipelines = make(map[string]*GraphicsPipeline)
	return sy
}

// WaitDone waits until device is done with current processing steps
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

// Release releases the pipelines. The Surface and Device
// are owned by the caller.
func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	for _, pl := range sy.GraphicsPipelines {
		pl.Release()
	}
	sy.GraphicsPipelines = nil
}

// AddGraphicsPipeline adds a new GraphicsPipeline to the system
func (sy *GraphicsSystem) AddGraphicsPipeline(name string) *GraphicsPipeline {
	pl := NewGraphicsPipeline(name, sy.device)
	sy.GraphicsPipelines[pl.Name] = pl
	return pl
}

// When the render surface (e.g., window) is resized, call this function.
// WebGPU does not have any internal mechanism for tracking this, so we
// need to drive it from external events.
func (sy *GraphicsSystem) SetSize(size image.Point) {
	sy.Surface.SetSize(size)
}

// Config configures all the pipelines for the surface format.
// Any pipeline error is returned before the remaining pipelines
// are configured.
func (sy *GraphicsSystem) Config() error {
	for _, pl := range sy.GraphicsPipelines {
		if err := pl.Config(sy.Surface.Format.Format); err != nil {
			return err
		}
	}
	return nil
}

// SetClearColor sets the color the frame is cleared to
// when starting a new render pass.
func (sy *GraphicsSystem) SetClearColor(c wgpu.Color) *GraphicsSystem {
	sy.Render.ClearColor = c
	return sy
}

//////////////////////////////////////////////////////////////////////////
// Rendering

// NewCommandEncoder returns a new CommandEncoder for encoding
// rendering commands.  This is automatically called by
// BeginRenderPass and the result maintained in CommandEncoder.
func (sy *GraphicsSystem) NewCommandEncoder() (*wgpu.CommandEncoder, error) {
	cmd, err := sy.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return cmd, nil
}

// BeginRenderPass acquires the next surface texture, creates the
// command encoder and starts a render pass that clears the texture
// to the ClearColor. It returns the encoder object to which further
// rendering commands should be added.
// Call [GraphicsSystem.EndRenderPass] when done.
func (sy *GraphicsSystem) BeginRenderPass() (*wgpu.RenderPassEncoder, error) {
	view, err := sy.Surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}
	defer view.Release()
	cmd, err := sy.NewCommandEncoder()
	if err != nil {
		sy.Surface.ReleaseTexture()
		return nil, err
	}
	sy.CommandEncoder = cmd
	return sy.Render.BeginRenderPass(cmd, view), nil
}

// SubmitRender ends the given render pass, submits the current
// render commands to the device Queue and releases the
// [GraphicsSystem.CommandEncoder] and the RenderPassEncoder.
func (sy *GraphicsSystem) SubmitRender(rp *wgpu.RenderPassEncoder) error {
	cmd := sy.CommandEncoder
	sy.CommandEncoder = nil
	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		cmd.Release()
		sy.Surface.ReleaseTexture()
		return err
	}
	sy.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// EndRenderPass ends the render pass started by [GraphicsSystem.BeginRenderPass],
// by calling [GraphicsSystem.SubmitRender] to submit the rendering commands to the
// device, and calling Present() on the Surface to show results.
func (sy *GraphicsSystem) EndRenderPass(rp *wgpu.RenderPassEncoder) error {
	if err := sy.SubmitRender(rp); err != nil {
		return err
	}
	sy.Surface.Present()
	return nil
}

// CancelRenderPass ends and releases the given render pass (if non-nil)
// and the [GraphicsSystem.CommandEncoder] without submitting anything,
// and releases the surface texture without presenting it.
// It is used to abandon a frame after an error.
func (sy *GraphicsSystem) CancelRenderPass(rp *wgpu.RenderPassEncoder) {
	if rp != nil {
		rp.End()
		rp.Release()
	}
	if sy.CommandEncoder != nil {
		sy.CommandEncoder.Release()
		sy.CommandEncoder = nil
	}
	if sy.Surface != nil {
		sy.Surface.ReleaseTexture()
	}
}
