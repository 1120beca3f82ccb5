// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/bog/colors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the elements needed for a render pass:
// the format of the target and the clear color.
// The Render object lives on the Renderer (Surface), and
// the GraphicsSystem uses it to begin render passes.
type Render struct {
	// image format information for the framebuffer we render to
	Format *TextureFormat

	// values for clearing image when starting render pass
	ClearColor color.Color

	device *Device
}

// Release is a no-op while there is no depth or multisample texture.
func (rp *Render) Release() {}

// Config configures the render pass for given device and format.
func (rp *Render) Config(dev *Device, format *TextureFormat) {
	rp.device = dev
	rp.Format = format
	if rp.ClearColor == nil {
		rp.ClearColor = colors.Black
	}
}

// ClearRenderPass returns a render pass descriptor that clears the framebuffer
func (rp *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	r, g, b, a := colors.ToFloat64(rp.ClearColor)
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:   view,
			LoadOp: wgpu.LoadOpClear,
			ClearValue: wgpu.Color{
				R: r,
				G: g,
				B: b,
				A: a,
			},
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// LoadRenderPass returns a render pass descriptor that loads previous framebuffer
func (rp *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass adds commands to the given command encoder
// to start the render pass on given framebuffer.
// Clears the frame first, according to the ClearColor.
func (rp *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rp.ClearRenderPass(view))
}
