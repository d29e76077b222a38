// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the presentable texture chain for a window.
// WebGPU does not track window size changes, so [Surface.SetSize]
// must be driven from the window resize events.
type Surface struct {
	// pointer to gpu device, for convenience
	GPU *GPU

	// logical device this surface is configured for.
	Device *Device

	// has the current image format and dimensions
	Format TextureFormat

	// Config is the current surface configuration.
	Config wgpu.SurfaceConfiguration

	// PresentMode is the requested presentation mode, used
	// if the surface supports it.
	PresentMode wgpu.PresentMode

	// Configured is true once Configure has been called.
	Configured bool

	surface *wgpu.Surface

	// texture acquired for the current frame, released after Present.
	curTexture *wgpu.Texture
}

// NewSurface returns a new surface bound to the window described by
// the given descriptor, created from the GPU instance.
func NewSurface(gp *GPU, desc *wgpu.SurfaceDescriptor) *Surface {
	sf := &Surface{GPU: gp, PresentMode: wgpu.PresentModeFifo}
	sf.Format.Defaults()
	sf.surface = gp.Instance.CreateSurface(desc)
	return sf
}

// WGPU returns the underlying WebGPU surface.
func (sf *Surface) WGPU() *wgpu.Surface {
	return sf.surface
}

// ClampSize returns the given size with each dimension at least 1,
// which is the smallest size a surface can be configured with.
func ClampSize(size image.Point) image.Point {
	return image.Point{X: max(size.X, 1), Y: max(size.Y, 1)}
}

// DefaultConfig derives the surface configuration for the given
// capabilities and size. It picks the first sRGB format (or the first
// format), the first alpha mode, and the requested present mode if
// supported, otherwise FIFO, which every surface supports.
func DefaultConfig(caps wgpu.SurfaceCapabilities, size image.Point, mode wgpu.PresentMode) (wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return wgpu.SurfaceConfiguration{}, errors.New("gpu.DefaultConfig: surface is not supported by the adapter")
	}
	size = ClampSize(size)
	format := caps.Formats[0]
	for _, f := range caps.Formats {
		if IsSRGB(f) {
			format = f
			break
		}
	}
	alpha := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}
	if !slices.Contains(caps.PresentModes, mode) {
		mode = wgpu.PresentModeFifo
	}
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: mode,
		AlphaMode:   alpha,
	}, nil
}

// Init derives the default configuration of the surface for the given
// device and size from the capabilities of the selected adapter.
// It does not configure the surface: call [Surface.Configure] for that.
func (sf *Surface) Init(dev *Device, size image.Point) error {
	sf.Device = dev
	caps := sf.surface.GetCapabilities(sf.GPU.Adapter)
	cfg, err := DefaultConfig(caps, size, sf.PresentMode)
	if err != nil {
		return err
	}
	sf.Config = cfg
	sf.Format.Set(int(cfg.Width), int(cfg.Height), cfg.Format)
	if Debug {
		slog.Info("gpu.Surface: default config", "format", sf.Format.String(), "presentMode", cfg.PresentMode.String())
	}
	return nil
}

// Configure applies the current Config to the surface.
func (sf *Surface) Configure() {
	sf.surface.Configure(sf.GPU.Adapter, sf.Device.Device, &sf.Config)
	sf.Configured = true
}

// SetSize clamps the given size to at least 1x1, stores it in the
// configuration and reconfigures the surface.
func (sf *Surface) SetSize(size image.Point) {
	size = ClampSize(size)
	sf.Format.Size = size
	sf.Config.Width = uint32(size.X)
	sf.Config.Height = uint32(size.Y)
	sf.Configure()
}

// GetCurrentTexture acquires the next presentable texture and
// returns a view of it. It returns an error if no texture is available.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("gpu.Surface: failed to acquire next swap chain texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("gpu.Surface: failed to create texture view: %w", err)
	}
	sf.curTexture = tex
	return view, nil
}

// Present presents the texture acquired by GetCurrentTexture.
func (sf *Surface) Present() {
	sf.surface.Present()
	sf.ReleaseTexture()
}

// ReleaseTexture releases the texture acquired by GetCurrentTexture
// without presenting it.
func (sf *Surface) ReleaseTexture() {
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

func (sf *Surface) Release() {
	sf.ReleaseTexture()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	sf.Configured = false
}
