// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"syscall"
	"unsafe"
)

type d3d12ObjectVtbl struct {
	iUnknownVtbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

type d3d12DeviceChildVtbl struct {
	d3d12ObjectVtbl
	GetDevice uintptr
}

type deviceVtbl struct {
	d3d12ObjectVtbl
	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

// Device wraps ID3D12Device.
type Device struct {
	vtbl *deviceVtbl
}

func (d *Device) CreateCommandQueue(desc *CommandQueueDesc) (*CommandQueue, error) {
	var q *CommandQueue
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateCommandQueue,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&iidID3D12CommandQueue)),
		uintptr(unsafe.Pointer(&q)))
	if err := hresult("ID3D12Device::CreateCommandQueue", hr); err != nil {
		return nil, err
	}
	return q, nil
}

func (d *Device) CreateCommandAllocator(typ int32) (*CommandAllocator, error) {
	var a *CommandAllocator
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateCommandAllocator,
		uintptr(unsafe.Pointer(d)),
		uintptr(typ),
		uintptr(unsafe.Pointer(&iidID3D12CommandAllocator)),
		uintptr(unsafe.Pointer(&a)))
	if err := hresult("ID3D12Device::CreateCommandAllocator", hr); err != nil {
		return nil, err
	}
	return a, nil
}

func (d *Device) CreateGraphicsPipelineState(desc *GraphicsPipelineStateDesc) (*PipelineState, error) {
	var p *PipelineState
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateGraphicsPipelineState,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&iidID3D12PipelineState)),
		uintptr(unsafe.Pointer(&p)))
	if err := hresult("ID3D12Device::CreateGraphicsPipelineState", hr); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateCommandList creates a command list in the open
// state, bound to alloc. pso may be nil.
func (d *Device) CreateCommandList(nodeMask uint32, typ int32, alloc *CommandAllocator, pso *PipelineState) (*GraphicsCommandList, error) {
	var l *GraphicsCommandList
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateCommandList,
		uintptr(unsafe.Pointer(d)),
		uintptr(nodeMask),
		uintptr(typ),
		uintptr(unsafe.Pointer(alloc)),
		uintptr(unsafe.Pointer(pso)),
		uintptr(unsafe.Pointer(&iidID3D12GraphicsCommandList)),
		uintptr(unsafe.Pointer(&l)))
	if err := hresult("ID3D12Device::CreateCommandList", hr); err != nil {
		return nil, err
	}
	return l, nil
}

func (d *Device) CreateDescriptorHeap(desc *DescriptorHeapDesc) (*DescriptorHeap, error) {
	var h *DescriptorHeap
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateDescriptorHeap,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&iidID3D12DescriptorHeap)),
		uintptr(unsafe.Pointer(&h)))
	if err := hresult("ID3D12Device::CreateDescriptorHeap", hr); err != nil {
		return nil, err
	}
	return h, nil
}

func (d *Device) GetDescriptorHandleIncrementSize(typ int32) uint32 {
	n, _, _ := syscall.SyscallN(d.vtbl.GetDescriptorHandleIncrementSize,
		uintptr(unsafe.Pointer(d)),
		uintptr(typ))
	return uint32(n)
}

func (d *Device) CreateRootSignature(nodeMask uint32, blob *Blob) (*RootSignature, error) {
	var rs *RootSignature
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateRootSignature,
		uintptr(unsafe.Pointer(d)),
		uintptr(nodeMask),
		uintptr(blob.GetBufferPointer()),
		blob.GetBufferSize(),
		uintptr(unsafe.Pointer(&iidID3D12RootSignature)),
		uintptr(unsafe.Pointer(&rs)))
	if err := hresult("ID3D12Device::CreateRootSignature", hr); err != nil {
		return nil, err
	}
	return rs, nil
}

// CreateRenderTargetView creates a default RTV for res at
// the given descriptor.
func (d *Device) CreateRenderTargetView(res *Resource, handle CPUDescriptorHandle) {
	syscall.SyscallN(d.vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc: default view
		handle.Ptr)
}

// CreateCommittedResource creates a resource backed by an
// implicit heap. clear may be nil.
func (d *Device) CreateCommittedResource(heapProps *HeapProperties, heapFlags uint32, desc *ResourceDesc, initialState uint32, clear *ClearValue) (*Resource, error) {
	var r *Resource
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateCommittedResource,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heapProps)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(clear)),
		uintptr(unsafe.Pointer(&iidID3D12Resource)),
		uintptr(unsafe.Pointer(&r)))
	if err := hresult("ID3D12Device::CreateCommittedResource", hr); err != nil {
		return nil, err
	}
	return r, nil
}

func (d *Device) CreateFence(initialValue uint64, flags uint32) (*Fence, error) {
	var f *Fence
	hr, _, _ := syscall.SyscallN(d.vtbl.CreateFence,
		uintptr(unsafe.Pointer(d)),
		uintptr(initialValue),
		uintptr(flags),
		uintptr(unsafe.Pointer(&iidID3D12Fence)),
		uintptr(unsafe.Pointer(&f)))
	if err := hresult("ID3D12Device::CreateFence", hr); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *Device) Release() {
	release(unsafe.Pointer(d), d.vtbl.Release)
}

type debugVtbl struct {
	iUnknownVtbl
	EnableDebugLayer uintptr
}

// Debug wraps ID3D12Debug.
type Debug struct {
	vtbl *debugVtbl
}

func (d *Debug) EnableDebugLayer() {
	syscall.SyscallN(d.vtbl.EnableDebugLayer, uintptr(unsafe.Pointer(d)))
}

func (d *Debug) Release() {
	release(unsafe.Pointer(d), d.vtbl.Release)
}
