// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bog draws the quads of a scene file in a window with WebGPU,
// reloading the scene when the file changes.
//
//	bog [-config bog.toml] [-scene scene.toml] [-v | -vv | -q] [flags]
//
// Escape closes the window and R reloads the scene.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"cogentcore.org/bog/app"
	"cogentcore.org/bog/base/errors"
	"cogentcore.org/bog/base/logx"
	"cogentcore.org/bog/gpu"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	logx.SetDefaultLogger()
	cfg, err := app.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error(err.Error())
		return 1
	}
	if cfg.V || cfg.VV || cfg.Q {
		logx.UserLevel = logx.LevelFromFlags(cfg.VV, cfg.V, cfg.Q)
	}
	gpu.Debug = cfg.VV

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx, cfg); err != nil {
		slog.Error(err.Error())
		return 1
	}
	return 0
}
