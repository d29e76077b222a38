// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical device and its command queue.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for device
	Queue *wgpu.Queue

	// Limits are the limits requested for the device.
	Limits wgpu.Limits
}

// DefaultMaxTextureSize is the default WebGPU limit on the
// dimensions of a 2D texture.
const DefaultMaxTextureSize = 8192

// DeviceLimits returns the default limits, with the texture
// dimension limits raised to those supported by the adapter,
// so that textures can be as large as the adapter allows.
func DeviceLimits(adapter wgpu.Limits) wgpu.Limits {
	limits := wgpu.DefaultLimits()
	if adapter.MaxTextureDimension2D == 0 {
		return limits
	}
	limits.MaxTextureDimension1D = adapter.MaxTextureDimension1D
	limits.MaxTextureDimension2D = adapter.MaxTextureDimension2D
	limits.MaxTextureDimension3D = adapter.MaxTextureDimension3D
	return limits
}

// NewDevice requests a new logical device with [DeviceLimits]
// and its queue from the selected adapter of the given GPU.
func NewDevice(gp *GPU) (*Device, error) {
	if gp.Adapter == nil {
		return nil, errors.New("gpu.NewDevice: no adapter selected")
	}
	limits := DeviceLimits(gp.Limits)
	dev, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: gp.Name,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu.NewDevice: failed to get device: %w", err)
	}
	return &Device{Device: dev, Queue: dev.GetQueue(), Limits: limits}, nil
}

// MaxTextureSize returns the largest 2D texture dimension
// of the device.
func (dv *Device) MaxTextureSize() int {
	mx := dv.Limits.MaxTextureDimension2D
	if mx == 0 || mx == wgpu.LimitU32Undefined {
		return DefaultMaxTextureSize
	}
	return int(mx)
}

// WaitDone waits until device is done with current processing steps
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	dv.Device.Release()
	dv.Device = nil
}
