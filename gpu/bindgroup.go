// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureGroup is a bind group holding a texture at binding 0
// and its sampler at binding 1, both visible to the fragment shader,
// matching this WGSL:
//
//	@group(0) @binding(0) var t_diffuse: texture_2d<f32>;
//	@group(0) @binding(1) var s_diffuse: sampler;
type TextureGroup struct {
	// Name is used for labels.
	Name string

	// Group is the @group index.
	Group int

	Texture *Texture
	Sampler *Sampler

	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// TextureGroupLayoutEntries returns the layout entries for
// a texture + sampler bind group.
func TextureGroupLayoutEntries() []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
				Multisampled:  false,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	}
}

// NewTextureGroup creates the bind group layout and the bind group
// for the given texture and sampler, which must already be configured.
func NewTextureGroup(dev *Device, name string, group int, tx *Texture, sm *Sampler) (*TextureGroup, error) {
	if tx.view == nil || sm.sampler == nil {
		return nil, fmt.Errorf("gpu.NewTextureGroup %q: texture and sampler must be configured first", name)
	}
	tg := &TextureGroup{Name: name, Group: group, Texture: tx, Sampler: sm}
	lay, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   name,
		Entries: TextureGroupLayoutEntries(),
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	tg.layout = lay
	bg, err := dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name,
		Layout: lay,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tx.view},
			{Binding: 1, Sampler: sm.sampler},
		},
	})
	if errors.Log(err) != nil {
		tg.Release()
		return nil, err
	}
	tg.bindGroup = bg
	return tg, nil
}

// Layout returns the bind group layout, for [GraphicsPipeline.BindGroupLayouts].
func (tg *TextureGroup) Layout() *wgpu.BindGroupLayout {
	return tg.layout
}

// Bind binds the group for the next draw calls in the given render pass.
func (tg *TextureGroup) Bind(rp *wgpu.RenderPassEncoder) {
	rp.SetBindGroup(uint32(tg.Group), tg.bindGroup, nil) // note: nil is dynamic offsets
}

// Release releases the bind group and its layout, but not
// the texture and sampler.
func (tg *TextureGroup) Release() {
	if tg.bindGroup != nil {
		tg.bindGroup.Release()
		tg.bindGroup = nil
	}
	if tg.layout != nil {
		tg.layout.Release()
		tg.layout = nil
	}
}
