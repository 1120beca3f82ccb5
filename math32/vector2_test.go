// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{0.1, 0.2}, Vector2FromArray([2]float32{0.1, 0.2}))
	assert.Equal(t, [2]float32{3, 4}, Vec2(3, 4).Array())

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)
}

func TestVector2Arith(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, -4)
	assert.Equal(t, Vec2(4, -2), a.Add(b))
	assert.Equal(t, Vec2(-2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(1, 2), Vec2(3, 8).Div(Vec2(3, 4)))
	assert.Equal(t, Vec2(1, -4), a.Min(b))
	assert.Equal(t, Vec2(3, 2), a.Max(b))
	assert.Equal(t, Vec2(3, 4), b.Abs())
	assert.Equal(t, "(1, 2)", a.String())
}

func TestVector2IsFinite(t *testing.T) {
	assert.True(t, Vec2(1, -1).IsFinite())
	assert.False(t, Vec2(Infinity, 0).IsFinite())
	nan := Infinity - Infinity
	assert.False(t, Vec2(0, nan).IsFinite())
}
