// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a Pipeline specifically for the Graphics stack:
// a fixed bundle of vertex and fragment shader entry points,
// vertex buffer layouts, and rasterization and blend state,
// created once and reused for every draw call.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has various settings for graphics primitives,
	// e.g., TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// Blend is the blend state for the color target.
	Blend wgpu.BlendState

	// VertexBuffers are the layouts of the vertex buffers,
	// in slot order.
	VertexBuffers []wgpu.VertexBufferLayout

	renderPipeline *wgpu.RenderPipeline
}

// VertexAttribute describes one attribute within a vertex buffer.
type VertexAttribute struct {
	// Type is the data type of the attribute.
	Type Types

	// Offset is the byte offset within the vertex.
	Offset int

	// Location is the shader location (@location) of the attribute.
	Location int
}

// NewGraphicsPipeline returns a new GraphicsPipeline,
// with the graphics defaults set.
func NewGraphicsPipeline(name string, dev *Device) *GraphicsPipeline {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.device = dev
	pl.SetGraphicsDefaults()
	return pl
}

// SetShaderCode adds a shader with the given WGSL code,
// compiling it, and adds vertex and fragment entry points
// with the given function names.
func (pl *GraphicsPipeline) SetShaderCode(code, vertexEntry, fragmentEntry string) error {
	sh := pl.AddShader(pl.Name)
	if err := sh.OpenCode(code); err != nil {
		return err
	}
	pl.AddEntry(sh, VertexShader, vertexEntry)
	pl.AddEntry(sh, FragmentShader, fragmentEntry)
	return nil
}

// AddVertexBuffer adds a vertex buffer layout for the next slot,
// with the given stride in bytes between vertices and the given
// attributes, stepping per vertex.
func (pl *GraphicsPipeline) AddVertexBuffer(stride int, attrs ...VertexAttribute) *GraphicsPipeline {
	vb := wgpu.VertexBufferLayout{
		ArrayStride: uint64(stride),
		StepMode:    wgpu.VertexStepModeVertex,
	}
	for _, at := range attrs {
		vb.Attributes = append(vb.Attributes, wgpu.VertexAttribute{
			Format:         at.Type.VertexFormat(),
			Offset:         uint64(at.Offset),
			ShaderLocation: uint32(at.Location),
		})
	}
	pl.VertexBuffers = append(pl.VertexBuffers, vb)
	return pl
}

// BindPipeline binds this pipeline as the one to use for next commands in
// the given render pass. [GraphicsPipeline.Config] must have been called.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		return fmt.Errorf("gpu: pipeline %q is not configured", pl.Name)
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
// Can be nil if no vertex shader defined.
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
// Can be nil if no fragment shader defined.
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// Descriptor returns the render pipeline descriptor for rendering
// to the given texture format, from the current settings.
func (pl *GraphicsPipeline) Descriptor(format wgpu.TextureFormat) (*wgpu.RenderPipelineDescriptor, error) {
	ve := pl.VertexEntry()
	if ve == nil || ve.Shader.module == nil {
		return nil, fmt.Errorf("gpu: pipeline %q has no compiled vertex shader", pl.Name)
	}
	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      pl.layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     ve.Shader.module,
			EntryPoint: ve.Entry,
			Buffers:    pl.VertexBuffers,
		},
	}
	fe := pl.FragmentEntry()
	if fe != nil {
		blend := pl.Blend
		pd.Fragment = &wgpu.FragmentState{
			Module:     fe.Shader.module,
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		}
	}
	return pd, nil
}

// Config is called once all the options have been set
// using Set* methods, and the shaders have been loaded.
// It builds the render pipeline for the given target format,
// rebuilding it if it already exists.
func (pl *GraphicsPipeline) Config(format wgpu.TextureFormat) error {
	pl.releasePipeline()
	if err := pl.bindLayout(); err != nil {
		return fmt.Errorf("gpu: pipeline %q layout: %w", pl.Name, err)
	}
	pd, err := pl.Descriptor(format)
	if err != nil {
		return err
	}
	rp, err := pl.device.Device.CreateRenderPipeline(pd)
	if err != nil {
		return fmt.Errorf("gpu: creating pipeline %q: %w", pl.Name, err)
	}
	pl.renderPipeline = rp
	return nil
}

// Configured returns true if the render pipeline has been built.
func (pl *GraphicsPipeline) Configured() bool {
	return pl.renderPipeline != nil
}

func (pl *GraphicsPipeline) Release() {
	pl.releaseShaders()
	pl.releasePipeline()
}

func (pl *GraphicsPipeline) releasePipeline() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for a
// graphics rendering pipeline: a triangle list with counter-clockwise
// front faces, back faces culled, colors replacing the target,
// and no multisampling.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(TriangleList, false)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetAlphaBlend(false)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
// For Strip modes, restartEnable allows restarting a new
// strip by inserting the maximum index value, using 32 bit indices.
func (pl *GraphicsPipeline) SetTopology(topo Topologies, restartEnable bool) *GraphicsPipeline {
	pl.Primitive.Topology = topo.Primitive()
	pl.Primitive.StripIndexFormat = wgpu.IndexFormatUndefined
	if restartEnable && (topo == LineStrip || topo == TriangleStrip) {
		pl.Primitive.StripIndexFormat = wgpu.IndexFormatUint32
	}
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetMultisample sets the number of multisampling samples.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// SetAlphaBlend determines the alpha (transparency) blending function:
// either 1-source alpha (alphaBlend) or no blending:
// new color overwrites old. Default is alphaBlend = false.
func (pl *GraphicsPipeline) SetAlphaBlend(alphaBlend bool) *GraphicsPipeline {
	if alphaBlend {
		pl.Blend = wgpu.BlendStatePremultipliedAlphaBlending
	} else {
		pl.Blend = wgpu.BlendStateReplace
	}
	return pl
}

// Topologies are the different vertex topology
type Topologies int32

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
