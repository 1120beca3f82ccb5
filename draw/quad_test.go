// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/bog/math32"
	"github.com/stretchr/testify/assert"
)

func TestQuadCanon(t *testing.T) {
	q := NewQuad(1, 1, -2, 3).Canon()
	assert.Equal(t, NewQuad(-1, 1, 2, 3), q)
	assert.Equal(t, q, q.Canon())
	assert.Equal(t, NewQuad(0, 0, 0, 0), NewQuad(0, 0, 0, 0).Canon())
}

func TestQuadCorners(t *testing.T) {
	c := NewQuad(1, 2, 3, 4).Corners()
	assert.Equal(t, math32.Vec2(1, 2), c[0])
	assert.Equal(t, math32.Vec2(4, 2), c[1])
	assert.Equal(t, math32.Vec2(1, 6), c[2])
	assert.Equal(t, math32.Vec2(4, 6), c[3])
}

func TestFromPixels(t *testing.T) {
	vp := image.Pt(200, 100)
	q := NewQuad(0, 0, 200, 100).FromPixels(vp)
	assert.Equal(t, NewQuad(-1, -1, 2, 2), q)

	q = NewQuad(50, 25, 100, 50).FromPixels(vp)
	assert.Equal(t, NewQuad(-0.5, -0.5, 1, 1), q)

	q = NewQuad(0, 0, 100, 50).FromPixels(vp)
	assert.Equal(t, NewQuad(-1, 0, 1, 1), q)

	assert.Equal(t, Quad{}, NewQuad(0, 0, 10, 10).FromPixels(image.Point{}))
	assert.Equal(t, NewQuad(-1, 0, 1, 1), PixelQuad(math32.B2(0, 0, 100, 50), vp))
}

func TestQuadIsFinite(t *testing.T) {
	assert.True(t, NewQuad(0, 0, 1, 1).IsFinite())
	assert.False(t, NewQuad(math32.Infinity, 0, 1, 1).IsFinite())
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, RGB(1, 0, 0), ColorOf(color.RGBA{255, 0, 0, 255}))
}
