// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type resourceVtbl struct {
	d3d12DeviceChildVtbl
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

// Resource wraps ID3D12Resource.
type Resource struct {
	vtbl *resourceVtbl
}

// Map returns a CPU pointer to the given subresource.
// readRange bounds the region the CPU may read; an empty
// range declares the intent not to read. A nil readRange
// allows reading the whole subresource.
func (r *Resource) Map(subresource uint32, readRange *Range) (unsafe.Pointer, error) {
	var p unsafe.Pointer
	hr, _, _ := syscall.SyscallN(r.vtbl.Map,
		uintptr(unsafe.Pointer(r)),
		uintptr(subresource),
		uintptr(unsafe.Pointer(readRange)),
		uintptr(unsafe.Pointer(&p)))
	if err := hresult("ID3D12Resource::Map", hr); err != nil {
		return nil, err
	}
	return p, nil
}

// Unmap invalidates the CPU pointer of the given
// subresource. writtenRange bounds the region the CPU
// wrote; nil marks the whole subresource as written.
func (r *Resource) Unmap(subresource uint32, writtenRange *Range) {
	syscall.SyscallN(r.vtbl.Unmap,
		uintptr(unsafe.Pointer(r)),
		uintptr(subresource),
		uintptr(unsafe.Pointer(writtenRange)))
}

// GetGPUVirtualAddress returns the GPU address of a buffer.
// The u64 result comes back in a single register on 64-bit.
func (r *Resource) GetGPUVirtualAddress() uint64 {
	a, _, _ := syscall.SyscallN(r.vtbl.GetGPUVirtualAddress,
		uintptr(unsafe.Pointer(r)))
	return uint64(a)
}

func (r *Resource) Release() {
	release(unsafe.Pointer(r), r.vtbl.Release)
}

type descriptorHeapVtbl struct {
	d3d12DeviceChildVtbl
	GetDesc                            uintptr
	GetCPUDescriptorHandleForHeapStart uintptr
	GetGPUDescriptorHandleForHeapStart uintptr
}

// DescriptorHeap wraps ID3D12DescriptorHeap.
type DescriptorHeap struct {
	vtbl *descriptorHeapVtbl
}

// GetCPUDescriptorHandleForHeapStart returns the handle of
// the heap's first descriptor.
// The C method returns the struct through a hidden pointer
// argument, despite what the header declares, so the call
// passes the output as its second parameter.
func (h *DescriptorHeap) GetCPUDescriptorHandleForHeapStart() CPUDescriptorHandle {
	var handle CPUDescriptorHandle
	syscall.SyscallN(h.vtbl.GetCPUDescriptorHandleForHeapStart,
		uintptr(unsafe.Pointer(h)),
		uintptr(unsafe.Pointer(&handle)))
	return handle
}

func (h *DescriptorHeap) Release() {
	release(unsafe.Pointer(h), h.vtbl.Release)
}

type fenceVtbl struct {
	d3d12DeviceChildVtbl
	GetCompletedValue    uintptr
	SetEventOnCompletion uintptr
	Signal               uintptr
}

// Fence wraps ID3D12Fence.
type Fence struct {
	vtbl *fenceVtbl
}

func (f *Fence) GetCompletedValue() uint64 {
	v, _, _ := syscall.SyscallN(f.vtbl.GetCompletedValue,
		uintptr(unsafe.Pointer(f)))
	return uint64(v)
}

// SetEventOnCompletion arranges for event to be signaled
// when the fence's completed value reaches value.
func (f *Fence) SetEventOnCompletion(value uint64, event windows.Handle) error {
	hr, _, _ := syscall.SyscallN(f.vtbl.SetEventOnCompletion,
		uintptr(unsafe.Pointer(f)),
		uintptr(value),
		uintptr(event))
	return hresult("ID3D12Fence::SetEventOnCompletion", hr)
}

// Signal updates the fence to value from the CPU.
func (f *Fence) Signal(value uint64) error {
	hr, _, _ := syscall.SyscallN(f.vtbl.Signal,
		uintptr(unsafe.Pointer(f)),
		uintptr(value))
	return hresult("ID3D12Fence::Signal", hr)
}

func (f *Fence) Release() {
	release(unsafe.Pointer(f), f.vtbl.Release)
}

type rootSignatureVtbl struct {
	d3d12DeviceChildVtbl
}

// RootSignature wraps ID3D12RootSignature.
type RootSignature struct {
	vtbl *rootSignatureVtbl
}

func (r *RootSignature) Release() {
	release(unsafe.Pointer(r), r.vtbl.Release)
}

type pipelineStateVtbl struct {
	d3d12DeviceChildVtbl
	GetCachedBlob uintptr
}

// PipelineState wraps ID3D12PipelineState.
type PipelineState struct {
	vtbl *pipelineStateVtbl
}

func (p *PipelineState) Release() {
	release(unsafe.Pointer(p), p.vtbl.Release)
}
