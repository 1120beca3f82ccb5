// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/bog/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsSystem manages a system of Pipelines that all render
// to the same Renderer. The System provides a simple top-level
// API for the whole render process.
type GraphicsSystem struct {
	// optional name of this GraphicsSystem
	Name string

	// GraphicsPipelines by name
	GraphicsPipelines map[string]*GraphicsPipeline

	// Renderer is the rendering target for this system.
	Renderer Renderer

	// CommandEncoder is the command encoder created in
	// [GraphicsSystem.BeginRenderPass], and released in [GraphicsSystem.SubmitRender].
	CommandEncoder *wgpu.CommandEncoder

	// logical device for this GraphicsSystem, from the Renderer.
	device *Device

	// gpu is our GPU device.
	gpu *GPU
}

// NewGraphicsSystem returns a new GraphicsSystem, using
// the given Renderer as the render target.
func NewGraphicsSystem(gp *GPU, name string, rd Renderer) *GraphicsSystem {
	sy := &GraphicsSystem{}
	sy.gpu = gp
	sy.Name = name
	sy.Renderer = rd
	sy.device = rd.Device()
	sy.GraphicsPipelines = make(map[string]*GraphicsPipeline)
	return sy
}

func (sy *GraphicsSystem) Device() *Device { return sy.device }
func (sy *GraphicsSystem) GPU() *GPU       { return sy.gpu }
func (sy *GraphicsSystem) Render() *Render { return sy.Renderer.Render() }

// WaitDone waits until device is done with current processing steps
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

// Release releases the pipelines. The Renderer is owned by the caller.
func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	if sy.CommandEncoder != nil {
		sy.CommandEncoder.Release()
		sy.CommandEncoder = nil
	}
	for _, pl := range sy.GraphicsPipelines {
		pl.Release()
	}
	sy.GraphicsPipelines = nil
	sy.gpu = nil
}

// AddGraphicsPipeline adds a new GraphicsPipeline to the system
func (sy *GraphicsSystem) AddGraphicsPipeline(name string) *GraphicsPipeline {
	pl := NewGraphicsPipeline(name, sy.device)
	sy.GraphicsPipelines[pl.Name] = pl
	return pl
}

// When the render surface (e.g., window) is resized, call this function.
// WebGPU does not have any internal mechanism for tracking this, so we
// need to drive it from external events.
func (sy *GraphicsSystem) SetSize(size image.Point) {
	sy.Renderer.SetSize(size)
}

// Config configures the entire system, after Pipelines
// have been initialized, building each pipeline for the
// format of the Renderer. This should not need to be
// called more than once.
func (sy *GraphicsSystem) Config() error {
	format := sy.Render().Format.Format
	if Debug {
		slog.Debug("gpu: configuring graphics system", "name", sy.Name, "format", TextureFormatName(format))
	}
	var errs []error
	for _, pl := range sy.GraphicsPipelines {
		errs = append(errs, pl.Config(format))
	}
	return errors.Join(errs...)
}

//////////////////////////////////////////////////////////////
// Set graphics options

// SetGraphicsDefaults configures all the default settings for all
// graphics rendering pipelines.
func (sy *GraphicsSystem) SetGraphicsDefaults() *GraphicsSystem {
	for _, pl := range sy.GraphicsPipelines {
		pl.SetGraphicsDefaults()
	}
	return sy
}

// SetCullMode sets the face culling mode.
func (sy *GraphicsSystem) SetCullMode(mode wgpu.CullMode) *GraphicsSystem {
	for _, pl := range sy.GraphicsPipelines {
		pl.SetCullMode(mode)
	}
	return sy
}

// SetAlphaBlend determines the alpha (transparency) blending function:
// either 1-source alpha (alphaBlend) or no blending.
// For all pipelines, to keep graphics settings consistent.
func (sy *GraphicsSystem) SetAlphaBlend(alphaBlend bool) *GraphicsSystem {
	for _, pl := range sy.GraphicsPipelines {
		pl.SetAlphaBlend(alphaBlend)
	}
	return sy
}

// SetClearColor sets the RGBA colors to set when starting new render
// For all pipelines, to keep graphics settings consistent.
func (sy *GraphicsSystem) SetClearColor(c color.Color) *GraphicsSystem {
	sy.Render().ClearColor = c
	return sy
}

//////////////////////////////////////////////////////////////////////////
// Rendering

// NewCommandEncoder returns a new CommandEncoder for encoding
// rendering commands.  This is automatically called by
// BeginRenderPass and the result maintained in CommandEncoder.
func (sy *GraphicsSystem) NewCommandEncoder() (*wgpu.CommandEncoder, error) {
	cmd, err := sy.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return cmd, nil
}

func (sy *GraphicsSystem) beginRenderPass() (*Render, *wgpu.TextureView, error) {
	rd := sy.Renderer
	view, err := rd.GetCurrentTexture()
	if err != nil {
		return nil, nil, err
	}
	cmd, err := sy.NewCommandEncoder()
	if err != nil {
		return nil, nil, err
	}
	sy.CommandEncoder = cmd
	return rd.Render(), view, nil
}

// BeginRenderPass acquires the next texture of the Renderer,
// creates the command encoder, and starts a render pass on it,
// returning the encoder object to which further rendering commands
// should be added. Call [GraphicsSystem.EndRenderPass] when done.
// This version Clears the target texture first, using the ClearColor.
// Texture acquire errors are returned as from [Surface.GetCurrentTexture].
func (sy *GraphicsSystem) BeginRenderPass() (*wgpu.RenderPassEncoder, error) {
	rd, view, err := sy.beginRenderPass()
	if err != nil {
		return nil, err
	}
	return rd.BeginRenderPass(sy.CommandEncoder, view), nil
}

// SubmitRender submits the current render commands to the device
// Queue and releases the [GraphicsSystem.CommandEncoder] and the given
// RenderPassEncoder.  You must call rp.End prior to calling this.
func (sy *GraphicsSystem) SubmitRender(rp *wgpu.RenderPassEncoder) error {
	cmd := sy.CommandEncoder
	if cmd == nil {
		return fmt.Errorf("gpu: SubmitRender called without BeginRenderPass")
	}
	sy.CommandEncoder = nil
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		cmd.Release()
		return err
	}
	sy.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// EndRenderPass ends the render pass started by [GraphicsSystem.BeginRenderPass],
// by calling [GraphicsSystem.SubmitRender] to submit the rendering commands to the
// device, and calling Present() on the Renderer to show results.
func (sy *GraphicsSystem) EndRenderPass(rp *wgpu.RenderPassEncoder) error {
	err := sy.SubmitRender(rp)
	sy.Renderer.Present()
	return err
}
