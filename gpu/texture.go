// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"
)

// Texture represents a WebGPU Texture with an associated TextureView.
// The WebGPU Texture is in device memory, in an optimized format.
type Texture struct {

	// Name of the texture, used as the label.
	Name string

	// Format & size of texture
	Format TextureFormat

	// MaxSize is the maximum width or height of the texture: larger
	// images are downscaled to fit. 0 means no limit.
	MaxSize int

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture `display:"-"`

	// WebGPU texture view
	view *wgpu.TextureView `display:"-"`

	// keep track of device for destroying view
	device *Device `display:"-"`
}

func NewTexture(name string, dev *Device) *Texture {
	tx := &Texture{Name: name}
	tx.device = dev
	tx.Format.Defaults()
	return tx
}

// View returns the default view of the texture, nil until created.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// FitSize returns the given size scaled down to fit within maxSize
// in both dimensions, preserving the aspect ratio.
// Sizes that already fit, or a maxSize <= 0, are returned as is.
func FitSize(sz image.Point, maxSize int) image.Point {
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return sz
	}
	if sz.X >= sz.Y {
		return image.Point{maxSize, max(1, sz.Y*maxSize/sz.X)}
	}
	return image.Point{max(1, sz.X*maxSize/sz.Y), maxSize}
}

// ImageToRGBA returns the image as an RGBA with top-left origin
// at 0,0, scaled down to fit in maxSize (if > 0).
func ImageToRGBA(img image.Image, maxSize int) *image.RGBA {
	rimg := imagex.AsRGBA(img)
	b := rimg.Bounds()
	sz := FitSize(b.Size(), maxSize)
	if sz == b.Size() && b.Min == (image.Point{}) {
		return rimg
	}
	dst := image.NewRGBA(image.Rectangle{Max: sz})
	if sz == b.Size() {
		draw.Draw(dst, dst.Bounds(), rimg, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), rimg, b, draw.Src, nil)
	return dst
}

// SetFromGoImage sets texture data from a standard Go image,
// which is interpreted as sRGB.  This is most efficiently done
// using an image.RGBA, but other formats will be converted as necessary.
// This starts the full WriteTexture call to upload to device.
func (tx *Texture) SetFromGoImage(img image.Image) error {
	rimg := ImageToRGBA(img, tx.MaxSize)
	sz := rimg.Rect.Size()

	tx.Format.Size = sz
	tx.Format.Format = wgpu.TextureFormatRGBA8UnormSrgb
	tx.Format.Layers = 1

	err := tx.CreateTexture(wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst)
	if err != nil { // already logged
		return err
	}

	size := tx.Format.Extent3D()

	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	tx.device.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		rimg.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(rimg.Stride),
			RowsPerImage: uint32(sz.Y),
		},
		&size,
	)
	return nil
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture.  Calls release first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.Release()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(max(tx.Format.Samples, 1)),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// ReleaseView destroys any existing view
func (tx *Texture) ReleaseView() {
	if tx.view == nil {
		return
	}
	tx.view.Release()
	tx.view = nil
}

// ReleaseTexture frees device memory version of texture that we own
func (tx *Texture) ReleaseTexture() {
	tx.ReleaseView()
	if tx.texture == nil {
		return
	}
	tx.texture.Release()
	tx.texture = nil
}

// Release destroys any existing view, nils fields
func (tx *Texture) Release() {
	tx.ReleaseTexture()
}
