// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	_ "embed"

	"cogentcore.org/bog/draw"
	"cogentcore.org/bog/gpu"
)

//go:embed shaders/quad.wgsl
var quadShader string

// Shader entry points in quad.wgsl.
const (
	quadVertexEntry   = "vs_main"
	quadFragmentEntry = "fs_main"
)

// QuadAttributes are the vertex attributes of [draw.Vertex].
var QuadAttributes = []gpu.VertexAttribute{
	{Type: gpu.Float32Vector2, Offset: draw.PosOffset, Location: draw.PosLocation},
	{Type: gpu.Float32Vector3, Offset: draw.ColorOffset, Location: draw.ColorLocation},
}

// AddQuadPipeline adds the pipeline that draws [draw.Batch] meshes
// to the given system, with the graphics defaults: back faces are
// culled and there is no blending.
func AddQuadPipeline(sy *gpu.GraphicsSystem) (*gpu.GraphicsPipeline, error) {
	pl := sy.AddGraphicsPipeline("quads")
	if err := pl.SetShaderCode(quadShader, quadVertexEntry, quadFragmentEntry); err != nil {
		return nil, err
	}
	pl.AddVertexBuffer(draw.VertexStride, QuadAttributes...)
	return pl, nil
}

// IndexType returns the GPU index type for the given batch index format.
func IndexType(f draw.IndexFormats) gpu.Types {
	if f == draw.Index16 {
		return gpu.Uint16
	}
	return gpu.Uint32
}

// NewQuadMesh uploads the given batch to a new mesh on the given device,
// using 16-bit indices when they suffice.
func NewQuadMesh(dev *gpu.Device, b *draw.Batch) (*gpu.Mesh, error) {
	if idx, ok := b.Indices16(); ok {
		return gpu.NewMesh(dev, "quads", b.Vertices(), idx)
	}
	return gpu.NewMesh(dev, "quads", b.Vertices(), b.Indices())
}
