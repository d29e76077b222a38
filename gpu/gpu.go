// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug is a global flag for turning on debug mode, which
// logs formats, configurations and other details of GPU setup.
var Debug = false

// GPU represents the WebGPU instance and the hardware adapter
// selected for rendering.
type GPU struct {
	// Name of the program using this GPU, for labels and logging.
	Name string

	// Instance is the WebGPU rendering instance.
	Instance *wgpu.Instance

	// Adapter is the physical or virtual GPU selected by [GPU.SelectAdapter].
	// It is nil until then.
	Adapter *wgpu.Adapter

	// Limits are the limits supported by the Adapter.
	Limits wgpu.Limits
}

// AdapterOptions are the criteria for selecting an Adapter.
type AdapterOptions struct {
	// PowerPreference selects between integrated and discrete GPUs.
	PowerPreference wgpu.PowerPreference

	// ForceFallback requests a software (fallback) adapter only.
	ForceFallback bool
}

// NewGPU returns a new GPU with a new rendering instance.
// Call [GPU.SelectAdapter] once a Surface is available.
func NewGPU(name string) *GPU {
	gp := &GPU{Name: name}
	gp.Instance = wgpu.CreateInstance(nil)
	return gp
}

// SelectAdapter requests an adapter that is able to render
// to the given surface.
func (gp *GPU) SelectAdapter(sf *wgpu.Surface, opts AdapterOptions) error {
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallback,
		CompatibleSurface:    sf,
	})
	if err != nil {
		return fmt.Errorf("gpu: could not get an adapter (GPU): %w", err)
	}
	if ad == nil {
		return errors.New("gpu: could not get an adapter (GPU)")
	}
	gp.Adapter = ad
	gp.Limits = ad.GetLimits().Limits
	if Debug {
		slog.Info("gpu: selected adapter", "program", gp.Name, "maxTexture2D", gp.Limits.MaxTextureDimension2D)
	}
	return nil
}

// Release releases the adapter and the instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
