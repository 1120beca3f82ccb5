// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderTypes is a list of GPU shader types
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return "UnknownShader"
}

// Shader manages a single WGSL shader module,
// which can have multiple entry points.
type Shader struct {
	// Name is the unique name of this shader.
	Name string

	// Code is the WGSL source code.
	Code string

	module *wgpu.ShaderModule

	device *Device
}

// NewShader returns a new Shader for the given device.
func NewShader(name string, dev *Device) *Shader {
	sh := &Shader{Name: name, device: dev}
	return sh
}

// OpenFile loads given WGSL ".wgsl" code from file for the Shader.
func (sh *Shader) OpenFile(fname string) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return sh.OpenCode(string(b))
}

// OpenCode loads given WGSL ".wgsl" code for the Shader,
// compiling it into a shader module.
func (sh *Shader) OpenCode(code string) error {
	sh.Release()
	sh.Code = code
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: compiling shader %q: %w", sh.Name, err)
	}
	sh.module = module
	return nil
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// ShaderEntry is an entry point into a [Shader].
// There can be multiple entry points per shader.
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
	se := &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
	return se
}
