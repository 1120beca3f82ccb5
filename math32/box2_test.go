// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 5)
	assert.Equal(t, Vec2(10, 5), b.Size())
	assert.False(t, b.IsEmpty())
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.False(t, b.ContainsPoint(Vec2(11, 1)))

	assert.True(t, B2Empty().IsEmpty())
	assert.Equal(t, B2(1, 2, 3, 4), B2FromRect(image.Rect(1, 2, 3, 4)))
	assert.Equal(t, B2(1, 2, 4, 6), B2PosSize(Vec2(1, 2), Vec2(3, 4)))
	assert.Equal(t, B2(2, 4, 6, 8), B2(1, 2, 3, 4).MulScalar(2))
}

func TestBox2Canon(t *testing.T) {
	b := B2PosSize(Vec2(1, 1), Vec2(-2, 3))
	assert.True(t, b.IsEmpty())
	c := b.Canon()
	assert.Equal(t, B2(-1, 1, 1, 4), c)
	assert.False(t, c.IsEmpty())
	assert.Equal(t, c, c.Canon())
}

func TestBox2ExpandByPoint(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 1, 5), b)
}
