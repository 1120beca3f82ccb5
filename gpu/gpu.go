// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements a thin rendering layer over WebGPU:
// an adapter and device, a presentation surface, fixed graphics
// pipelines, immutable vertex and index buffers, and render passes.
package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/bog/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug is whether to enable debug mode, which logs
// more information about the GPU and configured resources.
var Debug = false

// PowerPreferences are the adapter power preferences that can be requested.
type PowerPreferences int32

const (
	// HighPerformance prefers a discrete, high performance adapter.
	HighPerformance PowerPreferences = iota

	// LowPower prefers an integrated, low power adapter.
	LowPower
)

// PowerPreferenceNames are the configuration names of [PowerPreferences].
var PowerPreferenceNames = map[string]PowerPreferences{
	"high-performance": HighPerformance,
	"low-power":        LowPower,
}

// ParsePowerPreference returns the [PowerPreferences] for the given name.
func ParsePowerPreference(name string) (PowerPreferences, error) {
	pp, ok := PowerPreferenceNames[name]
	if !ok {
		return HighPerformance, fmt.Errorf("gpu: unknown power preference %q", name)
	}
	return pp, nil
}

// WebGPU returns the WebGPU power preference.
func (pp PowerPreferences) WebGPU() wgpu.PowerPreference {
	if pp == LowPower {
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceHighPerformance
}

func (pp PowerPreferences) String() string {
	for nm, p := range PowerPreferenceNames {
		if p == pp {
			return nm
		}
	}
	return fmt.Sprintf("PowerPreferences(%d)", int32(pp))
}

// GPU represents the GPU hardware, holding the WebGPU instance
// and the selected adapter.
type GPU struct {
	// Instance is the WebGPU instance, which creates surfaces and adapters.
	Instance *wgpu.Instance

	// GPU is the current WebGPU adapter.
	GPU *wgpu.Adapter

	// Name is the name of the application using the GPU.
	Name string

	// PowerPreference is the power preference used to select the adapter.
	PowerPreference PowerPreferences

	// ForceFallback requests a software fallback adapter.
	ForceFallback bool

	// Properties are the general properties of the adapter.
	Properties wgpu.AdapterInfo

	// DeviceName is the name of the selected adapter.
	DeviceName string
}

// NewGPU returns a new GPU with a new WebGPU instance.
// Call [GPU.Config] to select an adapter.
func NewGPU() *GPU {
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	return gp
}

// Config selects an adapter for the application of the given name,
// able to present to the given surface (which may be nil for
// offscreen use), according to the power preference.
func (gp *GPU) Config(name string, surface *wgpu.Surface) error {
	gp.Name = name
	adapter, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		PowerPreference:      gp.PowerPreference.WebGPU(),
		ForceFallbackAdapter: gp.ForceFallback,
	})
	if err != nil {
		return fmt.Errorf("gpu: requesting adapter: %w", err)
	}
	gp.GPU = adapter
	gp.Properties = adapter.GetInfo()
	gp.DeviceName = gp.Properties.Name
	slog.Info("gpu: selected adapter", "app", name, "device", gp.DeviceName, "backend", gp.Properties.BackendType, "power", gp.PowerPreference)
	if Debug {
		slog.Debug("gpu: adapter info", "vendor", gp.Properties.VendorName, "driver", gp.Properties.DriverDescription, "type", gp.Properties.AdapterType)
	}
	return nil
}

// NewDevice returns a new device for this GPU.
func (gp *GPU) NewDevice() (*Device, error) {
	return NewDevice(gp)
}

// Release releases the adapter and the instance.
func (gp *GPU) Release() {
	if gp.GPU != nil {
		gp.GPU.Release()
		gp.GPU = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}

// checkConfigured returns an error if no adapter has been selected.
func (gp *GPU) checkConfigured() error {
	if gp == nil || gp.GPU == nil {
		return errors.New("gpu: GPU is not configured")
	}
	return nil
}
