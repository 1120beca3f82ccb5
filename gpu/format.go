// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a render target.
type TextureFormat struct {
	// Size of image
	Size image.Point

	// Texture format: RGBA8UnormSrgb is default
	Format wgpu.TextureFormat
}

// NewTextureFormat returns a new TextureFormat with default format and given size
func NewTextureFormat(width, height int) *TextureFormat {
	im := &TextureFormat{}
	im.Defaults()
	im.Size = image.Point{width, height}
	return im
}

func (im *TextureFormat) Defaults() {
	im.Format = wgpu.TextureFormatRGBA8UnormSrgb
}

// String returns human-readable version of format
func (im *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s", im.Size, TextureFormatName(im.Format))
}

// IsSRGB returns true if the format is one of the sRGB surface formats.
func (im *TextureFormat) IsSRGB() bool {
	return IsSRGB(im.Format)
}

// SetSize sets the width, height
func (im *TextureFormat) SetSize(w, h int) {
	im.Size = image.Point{X: w, Y: h}
}

// Size32 returns size as uint32 values
func (im *TextureFormat) Size32() (width, height uint32) {
	width = uint32(im.Size.X)
	height = uint32(im.Size.Y)
	return
}

// Aspect returns the aspect ratio X / Y
func (im *TextureFormat) Aspect() float32 {
	if im.Size.Y > 0 {
		return float32(im.Size.X) / float32(im.Size.Y)
	}
	return 1.3
}

// Bounds returns the rectangle defining this image: 0,0,w,h
func (im *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: im.Size}
}

// most commonly available surface formats: https://vulkan.gpuinfo.org/listsurfaceformats.php

// TextureFormatNames translates image format into human-readable string
// for most commonly available formats
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit unsigned linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit unsigned linear colorspace",
	wgpu.TextureFormatRGBA16Float:    "RGBA 16bit floating point linear colorspace",
	wgpu.TextureFormatRGB10A2Unorm:   "RGB 10bit, 2bit alpha, unsigned linear colorspace",
}

// TextureFormatName returns the human-readable name of the given format.
func TextureFormatName(tf wgpu.TextureFormat) string {
	if nm, ok := TextureFormatNames[tf]; ok {
		return nm
	}
	return fmt.Sprintf("TextureFormat(%d)", uint32(tf))
}

// IsSRGB returns true if the given format is one of the sRGB surface formats.
func IsSRGB(tf wgpu.TextureFormat) bool {
	return tf == wgpu.TextureFormatRGBA8UnormSrgb || tf == wgpu.TextureFormatBGRA8UnormSrgb
}

// PreferredFormat returns the first sRGB format in the given list,
// otherwise the first format, or Undefined for an empty list.
func PreferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if IsSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return wgpu.TextureFormatUndefined
}

// PreferredPresentMode returns the present mode to use from the given
// supported modes: FIFO when vsync is requested and supported,
// otherwise the first mode, or FIFO for an empty list (which is
// always supported).
func PreferredPresentMode(modes []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		for _, m := range modes {
			if m == wgpu.PresentModeFifo {
				return m
			}
		}
	}
	if len(modes) > 0 {
		return modes[0]
	}
	return wgpu.PresentModeFifo
}
