// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"
	"log/slog"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// debugLayer enables the D3D12 debug layer and unoptimized
// shader compilation. Meant to be flipped during
// development only.
const debugLayer = false

// device owns the DXGI factory, the logical device and the
// single direct queue that every other component hangs off.
type device struct {
	factory *d3d12.Factory4
	dev     *d3d12.Device
	queue   *d3d12.CommandQueue
}

// newDevice creates the device at feature level 11_0 on the
// default adapter, with one direct command queue.
func newDevice() (*device, error) {
	if err := d3d12.Load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	if debugLayer {
		if dbg, err := d3d12.GetDebugInterface(); err == nil {
			dbg.EnableDebugLayer()
			dbg.Release()
		} else {
			slog.Debug("debug layer unavailable", "err", err)
		}
	}
	factory, err := d3d12.CreateDXGIFactory1()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	dev, err := d3d12.CreateDevice(nil, d3d12.FEATURE_LEVEL_11_0)
	if err != nil {
		factory.Release()
		return nil, fmt.Errorf("%w: no compatible adapter: %w", ErrDeviceInit, err)
	}
	queue, err := dev.CreateCommandQueue(&d3d12.CommandQueueDesc{
		Type:  d3d12.COMMAND_LIST_TYPE_DIRECT,
		Flags: d3d12.COMMAND_QUEUE_FLAG_NONE,
	})
	if err != nil {
		dev.Release()
		factory.Release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	return &device{factory: factory, dev: dev, queue: queue}, nil
}

func (d *device) destroy() {
	if d.queue != nil {
		d.queue.Release()
	}
	if d.dev != nil {
		d.dev.Release()
	}
	if d.factory != nil {
		d.factory.Release()
	}
	*d = device{}
}
