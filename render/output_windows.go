// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// Fixed presentation parameters.
const (
	width       = 800
	height      = 600
	bufferCount = 2
	format      = d3d12.DXGI_FORMAT_R8G8B8A8_UNORM
)

// output is the presentation surface the frame driver
// renders into. Two implementations exist: the swap chain
// bound to a window, and a headless capture target that
// copies frames into CPU-readable memory.
// Both rotate over bufferCount targets so the frame driver
// behaves identically over either.
type output interface {
	// index returns the target the next frame renders into.
	index() uint32
	// target returns the render target resource at i.
	target(i uint32) *d3d12.Resource
	// rtv returns the RTV descriptor handle at i.
	rtv(i uint32) d3d12.CPUDescriptorHandle
	// finalState is the resource state the frame driver
	// transitions the target into when rendering ends.
	finalState() uint32
	// record appends output-specific commands for target i
	// to the list, after the transition into finalState.
	record(list *d3d12.GraphicsCommandList, i uint32)
	// present makes the rendered target visible and rotates
	// index to the next target.
	present() error
	destroy()
}

// rtvHeap is the descriptor bookkeeping both outputs share:
// a CPU-visible RTV heap of bufferCount slots with the
// stride queried from the device.
type rtvHeap struct {
	heap   *d3d12.DescriptorHeap
	start  d3d12.CPUDescriptorHandle
	stride uint32
}

func newRTVHeap(dev *d3d12.Device) (rtvHeap, error) {
	heap, err := dev.CreateDescriptorHeap(&d3d12.DescriptorHeapDesc{
		Type:           d3d12.DESCRIPTOR_HEAP_TYPE_RTV,
		NumDescriptors: bufferCount,
		Flags:          d3d12.DESCRIPTOR_HEAP_FLAG_NONE,
	})
	if err != nil {
		return rtvHeap{}, err
	}
	return rtvHeap{
		heap:   heap,
		start:  heap.GetCPUDescriptorHandleForHeapStart(),
		stride: dev.GetDescriptorHandleIncrementSize(d3d12.DESCRIPTOR_HEAP_TYPE_RTV),
	}, nil
}

// at returns the descriptor handle of slot i.
func (h rtvHeap) at(i uint32) d3d12.CPUDescriptorHandle {
	return h.start.Offset(int(i), h.stride)
}

func (h *rtvHeap) destroy() {
	if h.heap != nil {
		h.heap.Release()
		h.heap = nil
	}
}

// swapchainOutput presents through a 2-buffer flip-discard
// DXGI swap chain bound to a native window.
type swapchainOutput struct {
	chain   *d3d12.SwapChain3
	targets [bufferCount]*d3d12.Resource
	heap    rtvHeap
	idx     uint32
}

func newSwapchainOutput(d *device, hwnd uintptr) (*swapchainOutput, error) {
	sc1, err := d.factory.CreateSwapChainForHwnd(d.queue, hwnd, &d3d12.SwapChainDesc1{
		Width:       width,
		Height:      height,
		Format:      format,
		SampleDesc:  d3d12.SampleDesc{Count: 1},
		BufferUsage: d3d12.DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount: bufferCount,
		SwapEffect:  d3d12.DXGI_SWAP_EFFECT_FLIP_DISCARD,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	chain, err := sc1.QueryInterface3()
	sc1.Release()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	o := &swapchainOutput{chain: chain}
	o.heap, err = newRTVHeap(d.dev)
	if err != nil {
		o.destroy()
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	for i := uint32(0); i < bufferCount; i++ {
		o.targets[i], err = chain.GetBuffer(i)
		if err != nil {
			o.destroy()
			return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
		}
		d.dev.CreateRenderTargetView(o.targets[i], o.heap.at(i))
	}
	o.idx = chain.GetCurrentBackBufferIndex()
	return o, nil
}

func (o *swapchainOutput) index() uint32 { return o.idx }

func (o *swapchainOutput) target(i uint32) *d3d12.Resource { return o.targets[i] }

func (o *swapchainOutput) rtv(i uint32) d3d12.CPUDescriptorHandle { return o.heap.at(i) }

func (o *swapchainOutput) finalState() uint32 { return d3d12.RESOURCE_STATE_PRESENT }

func (o *swapchainOutput) record(*d3d12.GraphicsCommandList, uint32) {}

// present flips the chain vsync-locked and refreshes the
// back buffer index from it.
func (o *swapchainOutput) present() error {
	if err := o.chain.Present(1, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	o.idx = o.chain.GetCurrentBackBufferIndex()
	return nil
}

func (o *swapchainOutput) destroy() {
	for i, t := range o.targets {
		if t != nil {
			t.Release()
			o.targets[i] = nil
		}
	}
	o.heap.destroy()
	if o.chain != nil {
		o.chain.Release()
		o.chain = nil
	}
}
