// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// IndexTypes are the Go index types that can be uploaded to an index buffer.
type IndexTypes interface {
	~uint16 | ~uint32
}

// Mesh holds immutable GPU vertex and index buffers for indexed drawing.
// A mesh built from empty data has no buffers and draws nothing.
type Mesh struct {
	// Name is used as the label of the buffers.
	Name string

	// NumVertices is the number of vertices in the vertex buffer.
	NumVertices int

	// NumIndices is the number of indices in the index buffer.
	NumIndices int

	// IndexType is the type of the indices: Uint16 or Uint32.
	IndexType Types

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
}

// IndexTypeOf returns the [Types] of the given index type.
func IndexTypeOf[I IndexTypes]() Types {
	var zero I
	if unsafe.Sizeof(zero) == 2 {
		return Uint16
	}
	return Uint32
}

// NewMesh uploads the given vertex and index data to new immutable
// GPU buffers on the given device. The vertex type must have the layout
// declared in the pipeline's vertex buffer. Empty data creates no buffers.
func NewMesh[V any, I IndexTypes](dev *Device, name string, vertices []V, indices []I) (*Mesh, error) {
	ms := &Mesh{Name: name, IndexType: IndexTypeOf[I]()}
	if len(vertices) == 0 || len(indices) == 0 {
		return ms, nil
	}
	vb, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating vertex buffer for %q: %w", name, err)
	}
	ib, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name + " indices",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vb.Release()
		return nil, fmt.Errorf("gpu: creating index buffer for %q: %w", name, err)
	}
	ms.vertexBuffer = vb
	ms.indexBuffer = ib
	ms.NumVertices = len(vertices)
	ms.NumIndices = len(indices)
	return ms, nil
}

// IsEmpty returns true if the mesh has nothing to draw.
func (ms *Mesh) IsEmpty() bool {
	return ms == nil || ms.NumIndices == 0 || ms.indexBuffer == nil
}

// BindDrawIndexed binds the vertex buffer to slot 0 and the index
// buffer, and draws all the indices as a single instance
// into the given render pass. An empty mesh draws nothing.
func (ms *Mesh) BindDrawIndexed(rp *wgpu.RenderPassEncoder) {
	if ms.IsEmpty() {
		return
	}
	rp.SetVertexBuffer(0, ms.vertexBuffer, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(ms.indexBuffer, ms.IndexType.IndexType(), 0, wgpu.WholeSize)
	rp.DrawIndexed(uint32(ms.NumIndices), 1, 0, 0, 0)
}

// Release releases the buffers.
func (ms *Mesh) Release() {
	if ms == nil {
		return
	}
	if ms.vertexBuffer != nil {
		ms.vertexBuffer.Release()
		ms.vertexBuffer = nil
	}
	if ms.indexBuffer != nil {
		ms.indexBuffer.Release()
		ms.indexBuffer = nil
	}
	ms.NumVertices = 0
	ms.NumIndices = 0
}
