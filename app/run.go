// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the bog application: it opens a window, draws the
// quads of a scene with WebGPU, and reloads the scene when it changes.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/bog/base/errors"
	"cogentcore.org/bog/gpu"
	"cogentcore.org/bog/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// MaxReconfigureFailures is the number of consecutive frames that may
// fail needing the surface to be reconfigured before giving up.
const MaxReconfigureFailures = 8

// FPSInterval is how often the frame rate is logged at debug level.
const FPSInterval = 10 * time.Second

// LoadScene returns the scene in the given file,
// or the built-in scene for an empty path.
func LoadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	return scene.Open(path)
}

// Run opens the window and draws the scene of the given config until
// the window is closed or the context is done. It must be called on
// the main thread.
func Run(ctx context.Context, cfg *Config) error {
	sc, err := LoadScene(cfg.Scene)
	if err != nil {
		return err
	}
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	st, err := NewState(cfg, sc)
	if err != nil {
		return err
	}
	defer st.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reloads := make(chan *scene.Scene, 1)
	if cfg.Scene != "" && cfg.Watch {
		w, err := scene.NewWatcher(cfg.Scene)
		if err != nil {
			slog.Warn("app: not watching scene file", "err", err)
		} else {
			defer w.Close()
			go func() { errors.Log(w.Run(ctx, reloads)) }()
		}
	}

	st.Window.OnResize = st.Resize
	st.Window.OnKey = func(key glfw.Key) {
		switch key {
		case glfw.KeyEscape:
			st.Window.SetShouldClose(true)
		case glfw.KeyR:
			reload(st, cfg.Scene)
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	policy := &framePolicy{MaxReconfigure: MaxReconfigureFailures}
	fps := newFPSCounter(time.Now(), FPSInterval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case sc := <-reloads:
			errors.Log(st.SetScene(sc))
		case now := <-ticker.C:
			if !st.Window.PollEvents() {
				return nil
			}
			ferr := st.Render()
			if err := policy.handle(ferr, st.Surface.Reconfigure); err != nil {
				return err
			}
			if ferr != nil {
				continue
			}
			if rate, ok := fps.frame(now); ok {
				slog.Debug("app: frame rate", "fps", fmt.Sprintf("%.0f", rate))
			}
		}
	}
}

// reload reads the scene file again and makes it current.
func reload(st *State, path string) {
	if path == "" {
		return
	}
	sc, err := scene.Open(path)
	if err != nil {
		slog.Error("app: reload failed, keeping previous scene", "err", err)
		return
	}
	if errors.Log(st.SetScene(sc)) == nil {
		slog.Info("app: reloaded scene", "path", path)
	}
}

// framePolicy decides what to do about frames that failed to render.
type framePolicy struct {
	// MaxReconfigure is the number of consecutive frames needing
	// the surface to be reconfigured at which rendering stops.
	MaxReconfigure int

	// failures is the number of consecutive such frames.
	failures int
}

// handle handles the error of rendering a frame, calling reconfigure
// when the surface needs it. It returns an error when rendering
// cannot continue.
func (fp *framePolicy) handle(err error, reconfigure func() error) error {
	switch gpu.FrameStatusOf(err) {
	case gpu.FrameOK:
		fp.failures = 0
	case gpu.FrameSkip:
		if errors.Is(err, gpu.ErrSurfaceTimeout) {
			slog.Warn("app: skipping frame", "err", err)
		}
	case gpu.FrameReconfigure:
		fp.failures++
		if fp.failures >= fp.MaxReconfigure {
			return fmt.Errorf("app: surface not recovered after %d frames: %w", fp.failures, err)
		}
		slog.Warn("app: reconfiguring surface", "err", err, "attempt", fp.failures)
		if rerr := reconfigure(); rerr != nil && !errors.Is(rerr, gpu.ErrNotConfigured) {
			slog.Error("app: reconfiguring surface failed", "err", rerr)
		}
	case gpu.FrameFatal:
		return fmt.Errorf("app: rendering failed: %w", err)
	}
	return nil
}

// fpsCounter computes the frame rate over intervals.
type fpsCounter struct {
	interval time.Duration
	start    time.Time
	frames   int
}

func newFPSCounter(start time.Time, interval time.Duration) *fpsCounter {
	return &fpsCounter{interval: interval, start: start}
}

// frame counts a frame rendered at the given time, returning the frame
// rate and true at the end of each interval.
func (fc *fpsCounter) frame(now time.Time) (float64, bool) {
	fc.frames++
	dur := now.Sub(fc.start)
	if dur < fc.interval {
		return 0, false
	}
	rate := float64(fc.frames) / dur.Seconds()
	fc.frames = 0
	fc.start = now
	return rate, true
}
