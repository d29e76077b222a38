// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh has the vertex layout and the static geometry
// of the pentagon drawn by the graphics context.
package mesh

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/math32"
	"cogentcore.org/pentagon/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one vertex of the mesh, laid out exactly as
// the vertex shader reads it: no padding between fields.
type Vertex struct {
	// Pos is the position in clip space, at @location(0).
	Pos math32.Vector3

	// TexCoord is the texture coordinate, with 0,0 at the
	// top-left of the texture, at @location(1).
	TexCoord math32.Vector2
}

// Stride is the size of a [Vertex] in bytes.
const Stride = int(unsafe.Sizeof(Vertex{}))

// Vertices are the corners of the pentagon, counter-clockwise from the top.
var Vertices = []Vertex{
	{math32.Vec3(-0.0868241, 0.49240386, 0), math32.Vec2(0.4131759, 0.00759614)},     // A
	{math32.Vec3(-0.49513406, 0.06958647, 0), math32.Vec2(0.0048659444, 0.43041354)}, // B
	{math32.Vec3(-0.21918549, -0.44939706, 0), math32.Vec2(0.28081453, 0.949397)},    // C
	{math32.Vec3(0.35966998, -0.3473291, 0), math32.Vec2(0.85967, 0.84732914)},       // D
	{math32.Vec3(0.44147372, 0.2347359, 0), math32.Vec2(0.9414737, 0.2652641)},       // E
}

// Indices are the three triangles of the pentagon fan, all sharing E.
var Indices = []uint16{
	0, 1, 4,
	1, 2, 4,
	2, 3, 4,
}

// IndexType is the type of the [Indices].
const IndexType = gpu.Uint16

// Layout returns the vertex buffer layout for [Vertex]:
// Pos at location 0 and TexCoord at location 1.
func Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(Stride),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         gpu.Float32Vector3.VertexFormat(),
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Pos)),
				ShaderLocation: 0,
			},
			{
				Format:         gpu.Float32Vector2.VertexFormat(),
				Offset:         uint64(unsafe.Offsetof(Vertex{}.TexCoord)),
				ShaderLocation: 1,
			},
		},
	}
}

// VertexBytes returns the raw bytes of the given vertices.
func VertexBytes(vtx []Vertex) []byte {
	return wgpu.ToBytes(vtx)
}

// IndexBytes returns the raw bytes of the given indices.
func IndexBytes(idx []uint16) []byte {
	return wgpu.ToBytes(idx)
}

// Validate checks that the indices form whole triangles and
// only reference the given vertices.
func Validate(vtx []Vertex, idx []uint16) error {
	if len(idx) == 0 || len(idx)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a whole number of triangles", len(idx))
	}
	for i, ix := range idx {
		if int(ix) >= len(vtx) {
			return fmt.Errorf("mesh: index %d at %d is out of range for %d vertices", ix, i, len(vtx))
		}
	}
	return nil
}
