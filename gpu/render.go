// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the render pass settings for a render target:
// the color used to clear it at the start of each pass.
type Render struct {
	// values for clearing image when starting render pass.
	// These are passed to the GPU as is, without colorspace conversion.
	ClearColor wgpu.Color
}

// ClearRenderPass returns a render pass descriptor that clears the
// framebuffer to the ClearColor and stores the result.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rd.ClearColor,
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass adds commands to the given command encoder
// to start the render pass on given view, clearing the frame
// to the ClearColor.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}
