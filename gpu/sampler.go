// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Sampler represents a WebGPU Sampler, which determines how
// a texture is read in the shader.
type Sampler struct {
	Name string

	// for U (horizontal) axis -- what to do when going off the edge
	UMode wgpu.AddressMode

	// for V (vertical) axis -- what to do when going off the edge
	VMode wgpu.AddressMode

	// for W (horizontal) axis -- what to do when going off the edge
	WMode wgpu.AddressMode

	// filter used when the texture is magnified.
	MagFilter wgpu.FilterMode

	// filter used when the texture is minified.
	MinFilter wgpu.FilterMode

	// filter used between mipmap levels.
	MipmapFilter wgpu.MipmapFilterMode

	sampler *wgpu.Sampler
}

// NewSampler returns a new Sampler with default settings:
// clamp to edge, linear magnification, nearest minification and mipmaps.
func NewSampler(name string) *Sampler {
	sm := &Sampler{Name: name}
	sm.Defaults()
	return sm
}

func (sm *Sampler) Defaults() {
	sm.UMode = wgpu.AddressModeClampToEdge
	sm.VMode = wgpu.AddressModeClampToEdge
	sm.WMode = wgpu.AddressModeClampToEdge
	sm.MagFilter = wgpu.FilterModeLinear
	sm.MinFilter = wgpu.FilterModeNearest
	sm.MipmapFilter = wgpu.MipmapFilterModeNearest
}

// Config creates the sampler on the given device.
func (sm *Sampler) Config(dev *Device) error {
	sm.Release()
	samp, err := dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         sm.Name,
		AddressModeU:  sm.UMode,
		AddressModeV:  sm.VMode,
		AddressModeW:  sm.WMode,
		MagFilter:     sm.MagFilter,
		MinFilter:     sm.MinFilter,
		MipmapFilter:  sm.MipmapFilter,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}
	sm.sampler = samp
	return nil
}

func (sm *Sampler) Release() {
	if sm.sampler == nil {
		return
	}
	sm.sampler.Release()
	sm.sampler = nil
}
