// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw accumulates axis-aligned quads into vertex and index
// data for a single indexed draw call.
package draw

const (
	// QuadVertices is the number of vertices per quad.
	QuadVertices = 4

	// QuadIndices is the number of indices per quad: two triangles
	// sharing the diagonal between vertices 1 and 2.
	QuadIndices = 6

	// MaxVertices16 is the largest number of vertices that
	// can be addressed with 16 bit indices.
	MaxVertices16 = 1 << 16
)

// quadPattern is the triangle list index pattern for one quad,
// relative to the first vertex of the quad.
var quadPattern = [QuadIndices]uint32{0, 1, 2, 2, 1, 3}

// IndexFormats are the index formats a batch can produce.
type IndexFormats int32

const (
	// Index16 is 16 bit unsigned indices.
	Index16 IndexFormats = iota

	// Index32 is 32 bit unsigned indices.
	Index32
)

// Batch accumulates quads as vertex and index data.
// It is append-only: quads can be added until [Batch.Reset].
type Batch struct {
	vertices []Vertex
	indices  []uint32
}

// NewBatch returns a new empty [Batch].
func NewBatch() *Batch {
	return &Batch{}
}

// AddQuad appends the given quad with the given color, as 4 vertices
// and 6 indices. The quad is made canonical first, see [Quad.Canon].
func (b *Batch) AddQuad(q Quad, c Color) *Batch {
	base := uint32(len(b.vertices))
	for _, p := range q.Canon().Corners() {
		b.vertices = append(b.vertices, Vertex{Pos: p.Array(), Color: c})
	}
	for _, ix := range quadPattern {
		b.indices = append(b.indices, base+ix)
	}
	return b
}

// Reset drops all quads, keeping allocated memory.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Len returns the number of quads.
func (b *Batch) Len() int {
	return len(b.vertices) / QuadVertices
}

// NumVertices returns the number of vertices.
func (b *Batch) NumVertices() int {
	return len(b.vertices)
}

// NumIndices returns the number of indices.
func (b *Batch) NumIndices() int {
	return len(b.indices)
}

// Vertices returns the vertex data. It is owned by the batch
// and only valid until the next change.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// Indices returns the index data. It is owned by the batch
// and only valid until the next change.
func (b *Batch) Indices() []uint32 {
	return b.indices
}

// IndexType returns the narrowest index format that can address
// all the vertices.
func (b *Batch) IndexType() IndexFormats {
	if len(b.vertices) <= MaxVertices16 {
		return Index16
	}
	return Index32
}

// Indices16 returns a new copy of the indices as 16 bit values,
// and false if there are too many vertices for 16 bit indices.
func (b *Batch) Indices16() ([]uint16, bool) {
	if b.IndexType() != Index16 {
		return nil, false
	}
	ix := make([]uint16, len(b.indices))
	for i, v := range b.indices {
		ix[i] = uint16(v)
	}
	return ix, true
}
