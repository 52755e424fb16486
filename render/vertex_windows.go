// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"
	"unsafe"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// Vertex matches the PSO's input layout: position at
// offset 0, color at offset 12, 28 bytes total.
type vertex struct {
	pos [3]float32
	col [4]float32
}

const vertexStride = uint32(unsafe.Sizeof(vertex{}))

// The triangle. Apex red, bottom-left green, bottom-right
// blue, all opaque.
var triangle = [3]vertex{
	{pos: [3]float32{0, 0.5, 0}, col: [4]float32{1, 0, 0, 1}},
	{pos: [3]float32{-0.5, -0.5, 0}, col: [4]float32{0, 1, 0, 1}},
	{pos: [3]float32{0.5, -0.5, 0}, col: [4]float32{0, 0, 1, 1}},
}

// vertexBuffer is the triangle's storage: a small committed
// buffer on the upload heap, written once at creation and
// only read by the GPU afterwards.
type vertexBuffer struct {
	buf  *d3d12.Resource
	view d3d12.VertexBufferView
}

func newVertexBuffer(dev *d3d12.Device) (*vertexBuffer, error) {
	size := uint64(vertexStride) * uint64(len(triangle))
	buf, err := dev.CreateCommittedResource(
		&d3d12.HeapProperties{Type: d3d12.HEAP_TYPE_UPLOAD},
		d3d12.HEAP_FLAG_NONE,
		&d3d12.ResourceDesc{
			Dimension:        d3d12.RESOURCE_DIMENSION_BUFFER,
			Width:            size,
			Height:           1,
			DepthOrArraySize: 1,
			MipLevels:        1,
			Format:           d3d12.DXGI_FORMAT_UNKNOWN,
			SampleDesc:       d3d12.SampleDesc{Count: 1},
			Layout:           d3d12.TEXTURE_LAYOUT_ROW_MAJOR,
		},
		d3d12.RESOURCE_STATE_GENERIC_READ,
		nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	// An empty read range declares CPU-write-only intent.
	p, err := buf.Map(0, &d3d12.Range{})
	if err != nil {
		buf.Release()
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	copy(unsafe.Slice((*byte)(p), size),
		unsafe.Slice((*byte)(unsafe.Pointer(&triangle[0])), size))
	buf.Unmap(0, nil)

	return &vertexBuffer{
		buf: buf,
		view: d3d12.VertexBufferView{
			BufferLocation: buf.GetGPUVirtualAddress(),
			SizeInBytes:    uint32(size),
			StrideInBytes:  vertexStride,
		},
	}, nil
}

func (v *vertexBuffer) destroy() {
	if v.buf != nil {
		v.buf.Release()
		v.buf = nil
	}
}
