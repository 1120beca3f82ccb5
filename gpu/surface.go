// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is an interface for something that can actually be rendered to.
// It returns a TextureView to render into, and then Presents the result.
// Surface is the main implementation.
type Renderer interface {
	// Device returns the device for this renderer,
	// which serves as the source device for the GraphicsSystem
	// and all of its components.
	Device() *Device

	// Render returns the Render object for this renderer,
	// which supports Multisampling and Depth buffers,
	// and handles all the render pass logic and state.
	Render() *Render

	// GetCurrentTexture returns a TextureView that is the current
	// target for rendering.
	GetCurrentTexture() (*wgpu.TextureView, error)

	// Present presents the rendered texture to the window
	// and finalizes the current render pass.
	Present()

	// SetSize sets the size of the render target.
	SetSize(size image.Point)

	// Release releases all of the resources.
	Release()
}

// Surface manages the physical device for the visible image
// of a window surface, and the swapchain for presenting images.
type Surface struct {
	// Format has the current rendering surface size and format.
	Format TextureFormat

	// VSync requests the FIFO present mode, which waits for the
	// vertical blank, when the surface supports it.
	VSync bool

	// PresentMode is the present mode in use.
	PresentMode wgpu.PresentMode

	// AlphaMode is the alpha compositing mode in use.
	AlphaMode wgpu.CompositeAlphaMode

	// render helper
	render Render

	// WebGPU handle for surface
	surface *wgpu.Surface

	gpu *GPU

	// device for this surface
	device *Device

	// configuration applied to the surface, nil until configured
	config *wgpu.SurfaceConfiguration

	// current texture and view, set by GetCurrentTexture until Present
	curTexture *wgpu.Texture
	curView    *wgpu.TextureView
}

// NewSurface returns a new surface presenting through the given WebGPU
// surface, configured for the given framebuffer size. A zero size leaves
// the surface unconfigured until [Surface.SetSize] is called with a
// valid size.
func NewSurface(gp *GPU, dev *Device, wsurf *wgpu.Surface, size image.Point, vsync bool) (*Surface, error) {
	sf := &Surface{}
	sf.gpu = gp
	sf.device = dev
	sf.surface = wsurf
	sf.VSync = vsync
	sf.Format.Size = size
	if err := sf.Config(); err != nil {
		return nil, err
	}
	return sf, nil
}

func (sf *Surface) Device() *Device { return sf.device }
func (sf *Surface) Render() *Render { return &sf.render }

// Config chooses the format and modes from the capabilities
// of the surface for the adapter, and configures the surface
// for the current size.
func (sf *Surface) Config() error {
	if err := sf.gpu.checkConfigured(); err != nil {
		return err
	}
	caps := sf.surface.GetCapabilities(sf.gpu.GPU)
	if len(caps.Formats) == 0 {
		return fmt.Errorf("gpu: surface is not compatible with adapter %q", sf.gpu.DeviceName)
	}
	sf.Format.Format = PreferredFormat(caps.Formats)
	sf.PresentMode = PreferredPresentMode(caps.PresentModes, sf.VSync)
	sf.AlphaMode = wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		sf.AlphaMode = caps.AlphaModes[0]
	}
	sf.render.Config(sf.device, &sf.Format)
	slog.Info("gpu: surface format", "format", TextureFormatName(sf.Format.Format), "present", sf.PresentMode, "alpha", sf.AlphaMode)
	sf.configure()
	return nil
}

// configure applies the configuration for the current size,
// unless the size is empty.
func (sf *Surface) configure() {
	if sf.Format.Size.X <= 0 || sf.Format.Size.Y <= 0 {
		return
	}
	w, h := sf.Format.Size32()
	sf.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       w,
		Height:      h,
		PresentMode: sf.PresentMode,
		AlphaMode:   sf.AlphaMode,
	}
	sf.surface.Configure(sf.gpu.GPU, sf.device.Device, sf.config)
}

// Configured returns true if the surface has a valid configuration.
func (sf *Surface) Configured() bool {
	return sf.config != nil
}

// SetSize sets the size of the surface, reconfiguring it.
// Zero sizes, as for a minimized window, and unchanged
// sizes are ignored.
func (sf *Surface) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if sf.Configured() && sf.Format.Size == size {
		return
	}
	sf.Format.Size = size
	sf.configure()
}

// Reconfigure applies the current configuration to the surface again,
// which is needed after the surface has been lost or become outdated.
func (sf *Surface) Reconfigure() error {
	if !sf.Configured() {
		return ErrNotConfigured
	}
	sf.releaseTexture()
	sf.surface.Configure(sf.gpu.GPU, sf.device.Device, sf.config)
	return nil
}

// GetCurrentTexture returns a TextureView that is the current
// target for rendering. Errors wrap the matching surface error:
// [ErrSurfaceLost], [ErrSurfaceOutdated], [ErrSurfaceTimeout]
// or [ErrOutOfMemory], or are [ErrNotConfigured].
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	if !sf.Configured() {
		return nil, ErrNotConfigured
	}
	sf.releaseTexture()
	texture, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, surfaceError(err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("gpu: creating texture view: %w", err)
	}
	sf.curTexture = texture
	sf.curView = view
	return view, nil
}

// Present presents the current texture to the window
// and releases it.
func (sf *Surface) Present() {
	if sf.curTexture == nil {
		return
	}
	sf.surface.Present()
	sf.releaseTexture()
}

func (sf *Surface) releaseTexture() {
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// Release releases the current texture and the surface.
// The device and GPU are owned by the caller.
func (sf *Surface) Release() {
	sf.releaseTexture()
	sf.render.Release()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	sf.config = nil
}
