// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds a logical device and its command queue.
type Device struct {
	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the queue for the device.
	Queue *wgpu.Queue
}

// NewDevice returns a new logical device for the given GPU.
func NewDevice(gp *GPU) (*Device, error) {
	if err := gp.checkConfigured(); err != nil {
		return nil, err
	}
	wdev, err := gp.GPU.RequestDevice(&wgpu.DeviceDescriptor{
		Label: gp.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: requesting device: %w", err)
	}
	dev := &Device{Device: wdev, Queue: wdev.GetQueue()}
	return dev, nil
}

// Release releases the queue and the device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Queue.Release()
	dv.Queue = nil
	dv.Device.Release()
	dv.Device = nil
}

// WaitDone waits until the device is idle.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}
