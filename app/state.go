// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/bog/base/errors"
	"cogentcore.org/bog/colors"
	"cogentcore.org/bog/draw"
	"cogentcore.org/bog/gpu"
	"cogentcore.org/bog/scene"
)

// DefaultClear is the clear color used when neither the scene
// nor the config sets one.
var DefaultClear = colors.NewRGBAf32(0.2, 0.1, 0.3, 1)

// State owns everything needed to draw a scene into a window.
// It must only be used on the main thread.
type State struct {
	Config *Config

	Window   *gpu.Window
	GPU      *gpu.GPU
	Device   *gpu.Device
	Surface  *gpu.Surface
	System   *gpu.GraphicsSystem
	Pipeline *gpu.GraphicsPipeline

	// Mesh is the uploaded batch of the current scene.
	Mesh *gpu.Mesh

	// Scene is the current scene.
	Scene *scene.Scene

	batch *draw.Batch

	// size is the current framebuffer size.
	size image.Point
}

// NewState opens the window and sets up the GPU to draw the given scene.
// [gpu.Init] must have been called.
func NewState(cfg *Config, sc *scene.Scene) (*State, error) {
	st := &State{Config: cfg, batch: draw.NewBatch()}
	if err := st.init(); err != nil {
		st.Release()
		return nil, err
	}
	if err := st.SetScene(sc); err != nil {
		st.Release()
		return nil, err
	}
	return st, nil
}

func (st *State) init() error {
	cfg := st.Config
	win, err := gpu.NewWindow(image.Pt(cfg.Width, cfg.Height), cfg.Title)
	if err != nil {
		return err
	}
	st.Window = win

	st.GPU = gpu.NewGPU()
	st.GPU.PowerPreference, err = gpu.ParsePowerPreference(cfg.PowerPreference)
	if err != nil {
		return err
	}
	wsurf := win.CreateSurface(st.GPU)
	if err := st.GPU.Config(cfg.Title, wsurf); err != nil {
		wsurf.Release()
		return err
	}
	st.Device, err = st.GPU.NewDevice()
	if err != nil {
		wsurf.Release()
		return err
	}
	st.size = win.FramebufferSize()
	st.Surface, err = gpu.NewSurface(st.GPU, st.Device, wsurf, st.size, cfg.VSync)
	if err != nil {
		wsurf.Release()
		return err
	}
	st.System = gpu.NewGraphicsSystem(st.GPU, "bog", st.Surface)
	st.Pipeline, err = AddQuadPipeline(st.System)
	if err != nil {
		return err
	}
	return st.System.Config()
}

// Resize resizes the surface to the given framebuffer size,
// and rebuilds the mesh for scenes in pixel units.
// Zero sizes, as for a minimized window, are recorded
// but leave the surface as it is.
func (st *State) Resize(size image.Point) {
	st.size = size
	st.System.SetSize(size)
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if st.Scene != nil && st.Scene.IsPixels() {
		errors.Log(st.rebuild())
	}
}

// SetScene makes the given scene current, rebuilding the mesh
// and setting the clear color. If the scene cannot be built, the
// previous scene stays current and the error is returned.
func (st *State) SetScene(sc *scene.Scene) error {
	prev := st.Scene
	st.Scene = sc
	if err := st.rebuild(); err != nil {
		st.Scene = prev
		return err
	}
	st.System.SetClearColor(ClearColor(sc, st.Config))
	slog.Debug("app: scene set", "quads", st.batch.Len(), "vertices", st.batch.NumVertices(), "index", IndexType(st.batch.IndexType()))
	return nil
}

// rebuild builds the batch for the current scene and size,
// and uploads it to a new mesh, replacing the current one.
func (st *State) rebuild() error {
	st.batch.Reset()
	if err := st.Scene.Build(st.batch, st.size); err != nil {
		return err
	}
	ms, err := NewQuadMesh(st.Device, st.batch)
	if err != nil {
		return fmt.Errorf("app: uploading scene: %w", err)
	}
	st.Mesh.Release()
	st.Mesh = ms
	return nil
}

// ClearColor returns the clear color for the given scene and config:
// that of the scene, else that of the config, else [DefaultClear].
func ClearColor(sc *scene.Scene, cfg *Config) color.Color {
	if sc != nil {
		if c, ok := sc.ClearColor(); ok {
			return c
		}
	}
	if cfg != nil && cfg.Clear != "" {
		if c, err := colors.FromString(cfg.Clear); err == nil {
			return colors.ToRGBAf32(c)
		}
	}
	return DefaultClear
}

// Render draws the current mesh into the next surface texture
// and presents it. Errors acquiring the texture are returned
// for [gpu.FrameStatusOf].
func (st *State) Render() error {
	rp, err := st.System.BeginRenderPass()
	if err != nil {
		return err
	}
	perr := st.Pipeline.BindPipeline(rp)
	if perr == nil {
		st.Mesh.BindDrawIndexed(rp)
	}
	return endPass(rp, perr, func() error { return st.System.EndRenderPass(rp) })
}

// passEnder is a render pass that can be ended.
type passEnder interface {
	End() error
}

// endPass ends the given render pass and then submits it,
// returning the encoding error, the end error and the submit error joined.
// The pass is submitted even when ending it fails, so that the
// command encoder and surface texture are released.
func endPass(rp passEnder, encodeErr error, submit func() error) error {
	endErr := rp.End()
	return errors.Join(encodeErr, endErr, submit())
}

// Release releases everything, in the reverse order of creation.
func (st *State) Release() {
	if st.Device != nil {
		st.Device.WaitDone()
	}
	st.Mesh.Release()
	st.Mesh = nil
	if st.System != nil {
		st.System.Release()
		st.System = nil
	}
	if st.Surface != nil {
		st.Surface.Release()
		st.Surface = nil
	}
	if st.Device != nil {
		st.Device.Release()
		st.Device = nil
	}
	if st.GPU != nil {
		st.GPU.Release()
		st.GPU = nil
	}
	if st.Window != nil {
		st.Window.Destroy()
		st.Window = nil
	}
}
