// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is the shared base for graphics pipelines.
// It manages Shader program(s) that accomplish a specific
// type of rendering.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	// Shaders contains actual shader code loaded for this pipeline.
	// A single shader can have multiple entry points: see Entries.
	Shaders map[string]*Shader

	// Entries contains the entry points into shader code,
	// which are what is actually called.
	Entries map[string]*ShaderEntry

	// layout is the pipeline layout, with no bind groups.
	layout *wgpu.PipelineLayout

	device *Device
}

// AddShader adds Shader with given name to the pipeline
func (pl *Pipeline) AddShader(name string) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if sh, has := pl.Shaders[name]; has {
		slog.Error("gpu.Pipeline AddShader: shader already exists", "shader", name, "pipeline", pl.Name)
		return sh
	}
	sh := NewShader(name, pl.device)
	pl.Shaders[name] = sh
	return sh
}

// EntryByType returns ShaderEntry by ShaderType.
// Returns nil if not found.
func (pl *Pipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, se := range pl.Entries {
		if se.Type == typ {
			return se
		}
	}
	return nil
}

// AddEntry adds ShaderEntry for given shader, [ShaderTypes], and entry function name.
func (pl *Pipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.Pipeline AddEntry: entry already exists", "entry", name, "pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// releaseShaders releases the shaders
func (pl *Pipeline) releaseShaders() {
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	pl.Shaders = nil
	pl.Entries = nil
}

// bindLayout makes the PipelineLayout, which has no bind groups.
func (pl *Pipeline) bindLayout() error {
	if pl.layout != nil {
		return nil
	}
	rpl, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: pl.Name,
	})
	if err != nil {
		return err
	}
	pl.layout = rpl
	return nil
}
