// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"image"

	"cogentcore.org/bog/math32"
)

// Quad is an axis-aligned rectangle in normalized device coordinates
// (x right, y up, both in [-1, 1] for the visible area), given by
// the position of one corner and a size extending from it.
type Quad struct {
	Pos  math32.Vector2
	Size math32.Vector2
}

// NewQuad returns a new [Quad] with the given position and size.
func NewQuad(x, y, w, h float32) Quad {
	return Quad{Pos: math32.Vec2(x, y), Size: math32.Vec2(w, h)}
}

// Canon returns the same rectangle with a non-negative size,
// moving the position to the minimum corner. The two triangles of
// a canonical quad are counter-clockwise in normalized device
// coordinates, so they are front-facing under back-face culling.
func (q Quad) Canon() Quad {
	if q.Size.X < 0 {
		q.Pos.X += q.Size.X
		q.Size.X = -q.Size.X
	}
	if q.Size.Y < 0 {
		q.Pos.Y += q.Size.Y
		q.Size.Y = -q.Size.Y
	}
	return q
}

// Corners returns the four corners in vertex order:
// pos, pos + (size.x, 0), pos + (0, size.y), pos + size.
func (q Quad) Corners() [QuadVertices]math32.Vector2 {
	return [QuadVertices]math32.Vector2{
		q.Pos,
		q.Pos.Add(math32.Vec2(q.Size.X, 0)),
		q.Pos.Add(math32.Vec2(0, q.Size.Y)),
		q.Pos.Add(q.Size),
	}
}

// IsFinite returns true if the position and size are finite numbers.
func (q Quad) IsFinite() bool {
	return q.Pos.IsFinite() && q.Size.IsFinite()
}

func (q Quad) String() string {
	return fmt.Sprintf("Quad{Pos: %v, Size: %v}", q.Pos, q.Size)
}

// FromPixels converts a quad given in window pixels (origin at the
// top-left corner, y down) to normalized device coordinates for the
// given viewport size. The result is canonical. An empty viewport
// gives a zero quad.
func (q Quad) FromPixels(viewport image.Point) Quad {
	if viewport.X <= 0 || viewport.Y <= 0 {
		return Quad{}
	}
	vp := math32.Vector2FromPoint(viewport)
	ndc := Quad{
		Pos:  math32.Vec2(2*q.Pos.X/vp.X-1, 1-2*q.Pos.Y/vp.Y),
		Size: math32.Vec2(2*q.Size.X/vp.X, -2*q.Size.Y/vp.Y),
	}
	return ndc.Canon()
}

// PixelQuad returns the normalized device coordinate quad for the
// given box in window pixels and viewport size. See [Quad.FromPixels].
func PixelQuad(box math32.Box2, viewport image.Point) Quad {
	return Quad{Pos: box.Min, Size: box.Size()}.FromPixels(viewport)
}
