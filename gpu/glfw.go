// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes the windowing system, using glfw.
// Must call before doing any window stuff.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gpu: initializing glfw: %w", err)
	}
	return nil
}

// Terminate shuts down the windowing system; call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Window is a desktop window to render into, with no client API
// of its own: WebGPU presents to it through a surface.
type Window struct {
	// Window is the glfw window.
	Window *glfw.Window

	// OnResize, if set, is called with the new framebuffer size
	// in pixels whenever it changes, including to zero on minimize.
	OnResize func(size image.Point)

	// OnKey, if set, is called with the key for each key press.
	OnKey func(key glfw.Key)
}

// NewWindow makes a new window of the given size and title.
// [Init] must have been called.
func NewWindow(size image.Point, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	gw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: creating window: %w", err)
	}
	w := &Window{Window: gw}
	gw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		if w.OnResize != nil {
			w.OnResize(image.Point{width, height})
		}
	})
	gw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && w.OnKey != nil {
			w.OnKey(key)
		}
	})
	return w, nil
}

// CreateSurface returns a new WebGPU surface presenting to this window,
// from the instance of the given GPU.
func (w *Window) CreateSurface(gp *GPU) *wgpu.Surface {
	return gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.Window))
}

// FramebufferSize returns the current size of the window in pixels.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.Window.GetFramebufferSize()
	return image.Point{width, height}
}

// PollEvents processes pending window events, calling the callbacks,
// and returns false once the window has been asked to close.
func (w *Window) PollEvents() bool {
	if w.Window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return !w.Window.ShouldClose()
}

// SetShouldClose sets whether the window should close,
// which is reported by the next [Window.PollEvents].
func (w *Window) SetShouldClose(close bool) {
	w.Window.SetShouldClose(close)
}

// Destroy destroys the window.
func (w *Window) Destroy() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
}
