// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a Pipeline specifically for the Graphics stack.
// There must be a vertex and a fragment entry point, which can be
// in the same shader.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has various settings for graphics primitives,
	// e.g., TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// VertexLayouts describe the vertex buffers, one per buffer slot.
	VertexLayouts []wgpu.VertexBufferLayout

	// BindGroupLayouts are the layouts of the bind groups used by
	// the shaders, indexed by @group. If empty, the layout is
	// derived automatically from the shader code.
	BindGroupLayouts []*wgpu.BindGroupLayout

	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline for given device.
func NewGraphicsPipeline(name string, dev *Device) *GraphicsPipeline {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.device = dev
	pl.SetGraphicsDefaults()
	return pl
}

// BindPipeline binds this pipeline as the one to use for next commands in
// the given render pass.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: not configured", pl.Name)
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

// IsConfigured returns true if the render pipeline has been created.
func (pl *GraphicsPipeline) IsConfigured() bool {
	return pl.renderPipeline != nil
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
// Can be nil if no vertex shader defined.
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
// Can be nil if no fragment shader defined.
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// Validate checks that both the vertex and fragment entries are
// defined, and that the shader code declares them.
func (pl *GraphicsPipeline) Validate() error {
	var errs []error
	for _, typ := range []ShaderTypes{VertexShader, FragmentShader} {
		se := pl.EntryByType(typ)
		if se == nil {
			errs = append(errs, fmt.Errorf("gpu.GraphicsPipeline %q: no %s entry", pl.Name, typ))
			continue
		}
		if err := se.Shader.HasEntry(typ, se.Entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Config creates the render pipeline for rendering into targets of
// the given format, once the shaders, entries and layouts have been set.
// It fails before creating any GPU object if the entries are not valid.
func (pl *GraphicsPipeline) Config(format wgpu.TextureFormat) error {
	if err := pl.Validate(); err != nil {
		return err
	}
	pl.ReleasePipeline()
	for _, sh := range pl.Shaders {
		if err := sh.Compile(pl.device); err != nil {
			return err
		}
	}
	if len(pl.BindGroupLayouts) > 0 {
		lay, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
			Label:            pl.Name,
			BindGroupLayouts: pl.BindGroupLayouts,
		})
		if errors.Log(err) != nil {
			return err
		}
		pl.layout = lay
	}
	ve := pl.VertexEntry()
	fe := pl.FragmentEntry()
	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      pl.layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.module,
			EntryPoint: ve.Entry,
			Buffers:    pl.VertexLayouts,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fe.Shader.module,
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
	rp, err := pl.device.Device.CreateRenderPipeline(pd)
	if errors.Log(err) != nil {
		return err
	}
	pl.renderPipeline = rp
	return nil
}

func (pl *GraphicsPipeline) Release() {
	pl.releaseShaders()
	pl.ReleasePipeline()
}

func (pl *GraphicsPipeline) ReleasePipeline() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for a
// graphics rendering pipeline.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(TriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo Topologies) *GraphicsPipeline {
	pl.Primitive.Topology = topo.Primitive()
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
