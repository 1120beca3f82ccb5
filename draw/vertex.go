// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"image/color"

	"cogentcore.org/bog/colors"
)

// Layout of [Vertex] in GPU memory, matching the vertex shader inputs:
// position at location 0 (float32x2) and color at location 1 (float32x3).
const (
	// VertexStride is the size of one Vertex in bytes.
	VertexStride = 20

	// PosOffset is the byte offset of the position.
	PosOffset = 0

	// ColorOffset is the byte offset of the color.
	ColorOffset = 8

	// PosLocation is the shader location of the position.
	PosLocation = 0

	// ColorLocation is the shader location of the color.
	ColorLocation = 1
)

// Vertex is one vertex of quad geometry, laid out tightly
// as it is uploaded to the vertex buffer.
type Vertex struct {
	Pos   [2]float32
	Color Color
}

// Color is a linear RGB color with components in [0, 1].
type Color [3]float32

// RGB returns a new [Color].
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// ColorOf returns the red, green and blue components of the given color,
// ignoring alpha.
func ColorOf(c color.Color) Color {
	r, g, b, _ := colors.ToFloat32(c)
	return Color{r, g, b}
}
