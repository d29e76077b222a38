// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/cogentcore/webgpu/wgpu"
)

// ColorToWGPU returns the given color as a [wgpu.Color] with
// components in the 0-1 range, suitable as a clear value.
// The values are not converted between color spaces.
func ColorToWGPU(c color.Color) wgpu.Color {
	r, g, b, a := colors.ToFloat32(c)
	return wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}
