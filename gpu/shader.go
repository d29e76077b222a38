// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// ShaderTypes is a list of GPU shader types
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
	ComputeShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "Vertex"
	case FragmentShader:
		return "Fragment"
	case ComputeShader:
		return "Compute"
	}
	return "Unknown"
}

// Shader manages a single WGSL shader source, which can
// have multiple entry points. See [ShaderEntry] for entry points.
type Shader struct {
	// Name is the name of the shader, used as the label of the module.
	Name string

	// Code is the WGSL source.
	Code string

	module *wgpu.ShaderModule
	device *Device
}

// NewShader returns a new Shader with given name,
// for the given device (which may be nil until Compile).
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenCode sets the WGSL code for the shader.
func (sh *Shader) OpenCode(code string) {
	sh.Code = code
}

// OpenFS loads the WGSL code for the shader from the given file
// in the given filesystem.
func (sh *Shader) OpenFS(fsys fs.FS, fname string) error {
	b, err := fs.ReadFile(fsys, fname)
	if errors.Log(err) != nil {
		return err
	}
	if sh.Name == "" {
		sh.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	sh.OpenCode(string(b))
	return nil
}

// EntryPoint is one entry point function found in shader code.
type EntryPoint struct {
	Name string
	Type ShaderTypes
}

// EntryPoints validates the WGSL code by parsing and lowering it
// with naga, and returns the entry points declared in it,
// in declaration order.
func (sh *Shader) EntryPoints() ([]EntryPoint, error) {
	if strings.TrimSpace(sh.Code) == "" {
		return nil, fmt.Errorf("gpu.Shader %q: no code", sh.Name)
	}
	ast, err := naga.Parse(sh.Code)
	if err != nil {
		return nil, fmt.Errorf("gpu.Shader %q: %w", sh.Name, err)
	}
	module, err := naga.LowerWithSource(ast, sh.Code)
	if err != nil {
		return nil, fmt.Errorf("gpu.Shader %q: %w", sh.Name, err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("gpu.Shader %q: %w", sh.Name, err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("gpu.Shader %q: %w", sh.Name, &verrs[0])
	}
	eps := make([]EntryPoint, len(module.EntryPoints))
	for i, ep := range module.EntryPoints {
		eps[i] = EntryPoint{Name: ep.Name, Type: StageShaderType(ep.Stage)}
	}
	return eps, nil
}

// StageShaderType returns the ShaderTypes for a naga shader stage.
// Task and mesh stages are not supported and return [UnknownShader].
func StageShaderType(stage ir.ShaderStage) ShaderTypes {
	switch stage {
	case ir.StageVertex:
		return VertexShader
	case ir.StageFragment:
		return FragmentShader
	case ir.StageCompute:
		return ComputeShader
	}
	return UnknownShader
}

// HasEntry returns an error if the shader code does not declare
// an entry point with given name and type.
func (sh *Shader) HasEntry(typ ShaderTypes, entry string) error {
	eps, err := sh.EntryPoints()
	if err != nil {
		return err
	}
	for _, ep := range eps {
		if ep.Name == entry && ep.Type == typ {
			return nil
		}
	}
	return fmt.Errorf("gpu.Shader %q: missing %s entry point %q", sh.Name, typ, entry)
}

// Compile creates the WebGPU shader module from the code.
func (sh *Shader) Compile(dev *Device) error {
	sh.Release()
	sh.device = dev
	module, err := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: sh.Code,
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	sh.module = module
	return nil
}

// Release destroys the shader module
func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}

// ShaderEntry is an entry point into a [Shader].  There can be multiple
// entry points per shader.
type ShaderEntry struct {
	// Shader has the code
	Shader *Shader

	// Type of shader entry point.
	Type ShaderTypes

	// Entry is the name of the function to call for this Entry.
	// Conventionally, it is some variant on "main"
	Entry string
}

// NewShaderEntry returns a new ShaderEntry with given settings
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
