// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is a device-resident buffer initialized from host data,
// such as vertex or index data.
type Buffer struct {
	// Name of the buffer, used as the label.
	Name string

	// Type of each element, e.g., Uint16 for an index buffer.
	Type Types

	// N is the number of elements in the buffer.
	N int

	// Usage of the buffer.
	Usage wgpu.BufferUsage

	buffer *wgpu.Buffer
}

// NewBuffer creates a new buffer on the given device with given
// usage, initialized with the given data of n elements of given type.
func NewBuffer(dev *Device, name string, usage wgpu.BufferUsage, typ Types, n int, data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("gpu.NewBuffer %q: no data", name)
	}
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: data,
		Usage:    usage,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Name: name, Type: typ, N: n, Usage: usage, buffer: buf}, nil
}

// SetVertex binds the buffer as the vertex buffer at given slot
// for the next draw calls in the given render pass.
func (bf *Buffer) SetVertex(rp *wgpu.RenderPassEncoder, slot int) {
	rp.SetVertexBuffer(uint32(slot), bf.buffer, 0, wgpu.WholeSize)
}

// SetIndex binds the buffer as the index buffer
// for the next draw calls in the given render pass.
func (bf *Buffer) SetIndex(rp *wgpu.RenderPassEncoder) {
	rp.SetIndexBuffer(bf.buffer, bf.Type.IndexType(), 0, wgpu.WholeSize)
}

func (bf *Buffer) Release() {
	if bf.buffer == nil {
		return
	}
	bf.buffer.Release()
	bf.buffer = nil
}
