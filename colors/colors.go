// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion to the
// float components used by the GPU.
package colors

import (
	"image/color"
)

var (
	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}

	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// RGBAf32 stores alpha-premultiplied RGBA values in float32 0..1 normalized
// format, which is what the GPU consumes directly.
type RGBAf32 struct {
	R, G, B, A float32
}

// NewRGBAf32 returns a new [RGBAf32] from the given components.
func NewRGBAf32(r, g, b, a float32) RGBAf32 {
	return RGBAf32{r, g, b, a}
}

// RGBA implements the color.Color interface.
func (c RGBAf32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*65535.0 + 0.5)
	g = uint32(c.G*65535.0 + 0.5)
	b = uint32(c.B*65535.0 + 0.5)
	a = uint32(c.A*65535.0 + 0.5)
	return
}

// RGB returns the red, green and blue components.
func (c RGBAf32) RGB() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ToFloat32 returns the given color as alpha-premultiplied
// float32 components in the 0-1 range. Float colors are
// returned exactly, without a round trip through 16 bit values.
func ToFloat32(c color.Color) (r, g, b, a float32) {
	switch fc := c.(type) {
	case RGBAf32:
		return fc.R, fc.G, fc.B, fc.A
	case *RGBAf32:
		return fc.R, fc.G, fc.B, fc.A
	}
	ur, ug, ub, ua := c.RGBA()
	return float32(ur) / 65535.0, float32(ug) / 65535.0, float32(ub) / 65535.0, float32(ua) / 65535.0
}

// ToFloat64 is the float64 version of [ToFloat32].
func ToFloat64(c color.Color) (r, g, b, a float64) {
	fr, fg, fb, fa := ToFloat32(c)
	return float64(fr), float64(fg), float64(fb), float64(fa)
}

// ToRGBAf32 converts the given color to [RGBAf32].
func ToRGBAf32(c color.Color) RGBAf32 {
	r, g, b, a := ToFloat32(c)
	return RGBAf32{r, g, b, a}
}
