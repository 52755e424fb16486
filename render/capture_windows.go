// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// rowPitch is the readback row stride. 800 RGBA pixels are
// 3200 bytes, already a multiple of the required 256-byte
// copy alignment.
const rowPitch = (width*4 + d3d12.TEXTURE_DATA_PITCH_ALIGNMENT - 1) &^
	(d3d12.TEXTURE_DATA_PITCH_ALIGNMENT - 1)

// captureOutput renders into committed render-target
// textures instead of a swap chain and copies every
// finished frame into a readback buffer.
// It rotates over bufferCount textures like the swap chain
// does, so the frame driver cannot tell them apart.
type captureOutput struct {
	targets  [bufferCount]*d3d12.Resource
	readback *d3d12.Resource
	heap     rtvHeap
	idx      uint32
}

func newCaptureOutput(d *device) (*captureOutput, error) {
	o := &captureOutput{}
	var err error
	o.heap, err = newRTVHeap(d.dev)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	texDesc := d3d12.ResourceDesc{
		Dimension:        d3d12.RESOURCE_DIMENSION_TEXTURE2D,
		Width:            width,
		Height:           height,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           format,
		SampleDesc:       d3d12.SampleDesc{Count: 1},
		Layout:           d3d12.TEXTURE_LAYOUT_UNKNOWN,
		Flags:            d3d12.RESOURCE_FLAG_ALLOW_RENDER_TARGET,
	}
	clear := d3d12.ClearValue{Format: format, Color: clearColor}
	for i := uint32(0); i < bufferCount; i++ {
		o.targets[i], err = d.dev.CreateCommittedResource(
			&d3d12.HeapProperties{Type: d3d12.HEAP_TYPE_DEFAULT},
			d3d12.HEAP_FLAG_NONE,
			&texDesc,
			d3d12.RESOURCE_STATE_COMMON,
			&clear)
		if err != nil {
			o.destroy()
			return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
		}
		d.dev.CreateRenderTargetView(o.targets[i], o.heap.at(i))
	}
	o.readback, err = d.dev.CreateCommittedResource(
		&d3d12.HeapProperties{Type: d3d12.HEAP_TYPE_READBACK},
		d3d12.HEAP_FLAG_NONE,
		&d3d12.ResourceDesc{
			Dimension:        d3d12.RESOURCE_DIMENSION_BUFFER,
			Width:            rowPitch * height,
			Height:           1,
			DepthOrArraySize: 1,
			MipLevels:        1,
			Format:           d3d12.DXGI_FORMAT_UNKNOWN,
			SampleDesc:       d3d12.SampleDesc{Count: 1},
			Layout:           d3d12.TEXTURE_LAYOUT_ROW_MAJOR,
		},
		d3d12.RESOURCE_STATE_COPY_DEST,
		nil)
	if err != nil {
		o.destroy()
		return nil, fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	return o, nil
}

func (o *captureOutput) index() uint32 { return o.idx }

func (o *captureOutput) target(i uint32) *d3d12.Resource { return o.targets[i] }

func (o *captureOutput) rtv(i uint32) d3d12.CPUDescriptorHandle { return o.heap.at(i) }

func (o *captureOutput) finalState() uint32 { return d3d12.RESOURCE_STATE_COPY_SOURCE }

// record copies target i into the readback buffer and
// returns the target to the common state, which is where
// the next frame's transition expects it.
func (o *captureOutput) record(list *d3d12.GraphicsCommandList, i uint32) {
	dst := d3d12.TextureCopyLocationPlacedFootprint{
		PResource: o.readback,
		Type:      d3d12.TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: d3d12.PlacedSubresourceFootprint{
			Footprint: d3d12.SubresourceFootprint{
				Format:   format,
				Width:    width,
				Height:   height,
				Depth:    1,
				RowPitch: rowPitch,
			},
		},
	}
	src := d3d12.TextureCopyLocationSubresourceIndex{
		PResource: o.targets[i],
		Type:      d3d12.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
	}
	list.CopyTextureRegion(unsafe.Pointer(&dst), 0, 0, 0, unsafe.Pointer(&src), nil)
	list.ResourceBarrier([]d3d12.ResourceBarrierTransition{{
		Type: d3d12.RESOURCE_BARRIER_TYPE_TRANSITION,
		Transition: d3d12.ResourceTransitionBarrier{
			PResource:   o.targets[i],
			Subresource: d3d12.RESOURCE_BARRIER_ALL_SUBRESOURCES,
			StateBefore: d3d12.RESOURCE_STATE_COPY_SOURCE,
			StateAfter:  d3d12.RESOURCE_STATE_COMMON,
		},
	}})
}

// present rotates to the next target. There is no display
// to flip; the readback copy recorded into the frame's
// command list stands in for it.
func (o *captureOutput) present() error {
	o.idx = (o.idx + 1) % bufferCount
	return nil
}

// readPixels returns the last captured frame.
// The caller must have waited for the GPU before calling.
func (o *captureOutput) readPixels() (*image.RGBA, error) {
	p, err := o.readback.Map(0, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	defer o.readback.Unmap(0, &d3d12.Range{})
	src := unsafe.Slice((*byte)(p), rowPitch*height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], src[y*rowPitch:])
	}
	return img, nil
}

func (o *captureOutput) destroy() {
	if o.readback != nil {
		o.readback.Release()
		o.readback = nil
	}
	for i, t := range o.targets {
		if t != nil {
			t.Release()
			o.targets[i] = nil
		}
	}
	o.heap.destroy()
}
