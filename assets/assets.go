// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets has the shaders and the texture bundled
// into the executable.
package assets

import (
	"embed"
	"fmt"
	"image"

	"cogentcore.org/core/base/iox/imagex"
)

//go:embed *.wgsl *.png
var FS embed.FS

const (
	// TexturedShader draws the mesh with the texture bound at
	// @group(0) @binding(0) and its sampler at @binding(1).
	TexturedShader = "pentagon.wgsl"

	// FlatShader draws the mesh colored by its texture coordinates,
	// without any bind group.
	FlatShader = "flat.wgsl"

	// Texture is the image drawn on the mesh.
	Texture = "texture.png"
)

//go:embed pentagon.wgsl
var pentagonWGSL string

//go:embed flat.wgsl
var flatWGSL string

// Shader returns the WGSL code of the textured or the flat shader.
func Shader(textured bool) string {
	if textured {
		return pentagonWGSL
	}
	return flatWGSL
}

// ShaderName returns the file name of the textured or the flat shader.
func ShaderName(textured bool) string {
	if textured {
		return TexturedShader
	}
	return FlatShader
}

// OpenTexture decodes the bundled texture into an RGBA
// image with its origin at the top-left.
func OpenTexture() (*image.RGBA, error) {
	img, _, err := imagex.OpenFS(FS, Texture)
	if err != nil {
		return nil, fmt.Errorf("assets: decoding %s: %w", Texture, err)
	}
	return imagex.AsRGBA(img), nil
}
