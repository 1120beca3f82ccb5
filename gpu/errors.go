// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/bog/base/errors"
)

// Errors returned when acquiring the next surface texture.
var (
	// ErrSurfaceLost is returned when the surface has been lost
	// and must be configured again.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated is returned when the surface no longer matches
	// its window, such as after a resize, and must be configured again.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceTimeout is returned when no texture became available in time.
	ErrSurfaceTimeout = errors.New("gpu: surface timeout")

	// ErrOutOfMemory is returned when the GPU ran out of memory.
	ErrOutOfMemory = errors.New("gpu: out of memory")

	// ErrNotConfigured is returned when the surface has no valid
	// configuration, such as while the window is minimized.
	ErrNotConfigured = errors.New("gpu: surface not configured")
)

// surfaceError returns the given texture acquire error from WebGPU,
// wrapped with the matching surface error when it can be identified
// from the message.
func surfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outofmemory") || strings.Contains(msg, "out of memory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)
	}
	return fmt.Errorf("gpu: getting current texture: %w", err)
}

// FrameStatus is what to do after an attempt to render a frame.
type FrameStatus int32

const (
	// FrameOK means the frame was rendered.
	FrameOK FrameStatus = iota

	// FrameReconfigure means the surface must be configured again
	// before the next frame.
	FrameReconfigure

	// FrameSkip means this frame is dropped and rendering continues.
	FrameSkip

	// FrameFatal means rendering cannot continue.
	FrameFatal
)

var frameStatusNames = [...]string{"OK", "Reconfigure", "Skip", "Fatal"}

func (fs FrameStatus) String() string {
	if fs < 0 || int(fs) >= len(frameStatusNames) {
		return fmt.Sprintf("FrameStatus(%d)", int32(fs))
	}
	return frameStatusNames[fs]
}

// FrameStatusOf returns the [FrameStatus] for the given frame error:
// lost, outdated and unidentified errors require reconfiguring, timeouts
// and an unconfigured surface skip the frame, and out of memory is fatal.
func FrameStatusOf(err error) FrameStatus {
	switch {
	case err == nil:
		return FrameOK
	case errors.Is(err, ErrOutOfMemory):
		return FrameFatal
	case errors.Is(err, ErrSurfaceLost), errors.Is(err, ErrSurfaceOutdated):
		return FrameReconfigure
	case errors.Is(err, ErrSurfaceTimeout), errors.Is(err, ErrNotConfigured):
		return FrameSkip
	}
	return FrameReconfigure
}
