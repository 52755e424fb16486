// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"syscall"
	"unsafe"
)

type commandQueueVtbl struct {
	d3d12DeviceChildVtbl
	UpdateTileMappings    uintptr
	CopyTileMappings      uintptr
	ExecuteCommandLists   uintptr
	SetMarker             uintptr
	BeginEvent            uintptr
	EndEvent              uintptr
	Signal                uintptr
	Wait                  uintptr
	GetTimestampFrequency uintptr
	GetClockCalibration   uintptr
	GetDesc               uintptr
}

// CommandQueue wraps ID3D12CommandQueue.
type CommandQueue struct {
	vtbl *commandQueueVtbl
}

func (q *CommandQueue) ExecuteCommandLists(lists []*GraphicsCommandList) {
	syscall.SyscallN(q.vtbl.ExecuteCommandLists,
		uintptr(unsafe.Pointer(q)),
		uintptr(len(lists)),
		uintptr(unsafe.Pointer(&lists[0])))
}

// Signal enqueues a GPU-side update of fence to value,
// executed after all previously submitted work completes.
func (q *CommandQueue) Signal(fence *Fence, value uint64) error {
	hr, _, _ := syscall.SyscallN(q.vtbl.Signal,
		uintptr(unsafe.Pointer(q)),
		uintptr(unsafe.Pointer(fence)),
		uintptr(value))
	return hresult("ID3D12CommandQueue::Signal", hr)
}

func (q *CommandQueue) Release() {
	release(unsafe.Pointer(q), q.vtbl.Release)
}

type commandAllocatorVtbl struct {
	d3d12DeviceChildVtbl
	Reset uintptr
}

// CommandAllocator wraps ID3D12CommandAllocator.
type CommandAllocator struct {
	vtbl *commandAllocatorVtbl
}

// Reset reclaims the allocator's memory. It fails while the
// GPU may still be executing commands recorded from it.
func (a *CommandAllocator) Reset() error {
	hr, _, _ := syscall.SyscallN(a.vtbl.Reset, uintptr(unsafe.Pointer(a)))
	return hresult("ID3D12CommandAllocator::Reset", hr)
}

func (a *CommandAllocator) Release() {
	release(unsafe.Pointer(a), a.vtbl.Release)
}

type graphicsCommandListVtbl struct {
	d3d12DeviceChildVtbl
	GetType                            uintptr
	Close                              uintptr
	Reset                              uintptr
	ClearState                         uintptr
	DrawInstanced                      uintptr
	DrawIndexedInstanced               uintptr
	Dispatch                           uintptr
	CopyBufferRegion                   uintptr
	CopyTextureRegion                  uintptr
	CopyResource                       uintptr
	CopyTiles                          uintptr
	ResolveSubresource                 uintptr
	IASetPrimitiveTopology             uintptr
	RSSetViewports                     uintptr
	RSSetScissorRects                  uintptr
	OMSetBlendFactor                   uintptr
	OMSetStencilRef                    uintptr
	SetPipelineState                   uintptr
	ResourceBarrier                    uintptr
	ExecuteBundle                      uintptr
	SetDescriptorHeaps                 uintptr
	SetComputeRootSignature            uintptr
	SetGraphicsRootSignature           uintptr
	SetComputeRootDescriptorTable      uintptr
	SetGraphicsRootDescriptorTable     uintptr
	SetComputeRoot32BitConstant        uintptr
	SetGraphicsRoot32BitConstant       uintptr
	SetComputeRoot32BitConstants       uintptr
	SetGraphicsRoot32BitConstants      uintptr
	SetComputeRootConstantBufferView   uintptr
	SetGraphicsRootConstantBufferView  uintptr
	SetComputeRootShaderResourceView   uintptr
	SetGraphicsRootShaderResourceView  uintptr
	SetComputeRootUnorderedAccessView  uintptr
	SetGraphicsRootUnorderedAccessView uintptr
	IASetIndexBuffer                   uintptr
	IASetVertexBuffers                 uintptr
	SOSetTargets                       uintptr
	OMSetRenderTargets                 uintptr
	ClearDepthStencilView              uintptr
	ClearRenderTargetView              uintptr
	ClearUnorderedAccessViewUint       uintptr
	ClearUnorderedAccessViewFloat      uintptr
	DiscardResource                    uintptr
	BeginQuery                         uintptr
	EndQuery                           uintptr
	ResolveQueryData                   uintptr
	SetPredication                     uintptr
	SetMarker                          uintptr
	BeginEvent                         uintptr
	EndEvent                           uintptr
	ExecuteIndirect                    uintptr
}

// GraphicsCommandList wraps ID3D12GraphicsCommandList.
type GraphicsCommandList struct {
	vtbl *graphicsCommandListVtbl
}

func (l *GraphicsCommandList) Close() error {
	hr, _, _ := syscall.SyscallN(l.vtbl.Close, uintptr(unsafe.Pointer(l)))
	return hresult("ID3D12GraphicsCommandList::Close", hr)
}

// Reset reopens the list for recording, drawing memory from
// alloc. pso sets the initial pipeline state and may be nil.
func (l *GraphicsCommandList) Reset(alloc *CommandAllocator, pso *PipelineState) error {
	hr, _, _ := syscall.SyscallN(l.vtbl.Reset,
		uintptr(unsafe.Pointer(l)),
		uintptr(unsafe.Pointer(alloc)),
		uintptr(unsafe.Pointer(pso)))
	return hresult("ID3D12GraphicsCommandList::Reset", hr)
}

func (l *GraphicsCommandList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertex, startInstance uint32) {
	syscall.SyscallN(l.vtbl.DrawInstanced,
		uintptr(unsafe.Pointer(l)),
		uintptr(vertexCountPerInstance),
		uintptr(instanceCount),
		uintptr(startVertex),
		uintptr(startInstance))
}

// CopyTextureRegion copies a region from src to dst. The
// location pointers must reference one of the two
// D3D12_TEXTURE_COPY_LOCATION forms declared in this
// package. box may be nil to copy the whole subresource.
func (l *GraphicsCommandList) CopyTextureRegion(dst unsafe.Pointer, dstX, dstY, dstZ uint32, src unsafe.Pointer, box *Box) {
	syscall.SyscallN(l.vtbl.CopyTextureRegion,
		uintptr(unsafe.Pointer(l)),
		uintptr(dst),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(dstZ),
		uintptr(src),
		uintptr(unsafe.Pointer(box)))
}

func (l *GraphicsCommandList) IASetPrimitiveTopology(topology int32) {
	syscall.SyscallN(l.vtbl.IASetPrimitiveTopology,
		uintptr(unsafe.Pointer(l)),
		uintptr(topology))
}

func (l *GraphicsCommandList) RSSetViewports(viewports []Viewport) {
	syscall.SyscallN(l.vtbl.RSSetViewports,
		uintptr(unsafe.Pointer(l)),
		uintptr(len(viewports)),
		uintptr(unsafe.Pointer(&viewports[0])))
}

func (l *GraphicsCommandList) RSSetScissorRects(rects []Rect) {
	syscall.SyscallN(l.vtbl.RSSetScissorRects,
		uintptr(unsafe.Pointer(l)),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(&rects[0])))
}

func (l *GraphicsCommandList) SetPipelineState(pso *PipelineState) {
	syscall.SyscallN(l.vtbl.SetPipelineState,
		uintptr(unsafe.Pointer(l)),
		uintptr(unsafe.Pointer(pso)))
}

func (l *GraphicsCommandList) ResourceBarrier(barriers []ResourceBarrierTransition) {
	syscall.SyscallN(l.vtbl.ResourceBarrier,
		uintptr(unsafe.Pointer(l)),
		uintptr(len(barriers)),
		uintptr(unsafe.Pointer(&barriers[0])))
}

func (l *GraphicsCommandList) SetGraphicsRootSignature(rs *RootSignature) {
	syscall.SyscallN(l.vtbl.SetGraphicsRootSignature,
		uintptr(unsafe.Pointer(l)),
		uintptr(unsafe.Pointer(rs)))
}

func (l *GraphicsCommandList) IASetVertexBuffers(startSlot uint32, views []VertexBufferView) {
	syscall.SyscallN(l.vtbl.IASetVertexBuffers,
		uintptr(unsafe.Pointer(l)),
		uintptr(startSlot),
		uintptr(len(views)),
		uintptr(unsafe.Pointer(&views[0])))
}

// OMSetRenderTargets binds a contiguous range of RTV
// descriptors starting at handle. No depth/stencil view
// is bound.
func (l *GraphicsCommandList) OMSetRenderTargets(n uint32, handle *CPUDescriptorHandle) {
	syscall.SyscallN(l.vtbl.OMSetRenderTargets,
		uintptr(unsafe.Pointer(l)),
		uintptr(n),
		uintptr(unsafe.Pointer(handle)),
		0, // RTsSingleHandleToDescriptorRange: FALSE
		0) // pDepthStencilDescriptor
}

// ClearRenderTargetView clears the target at handle to
// color. The full view is cleared.
// The handle is passed by value, as a single register-sized
// argument.
func (l *GraphicsCommandList) ClearRenderTargetView(handle CPUDescriptorHandle, color *[4]float32) {
	syscall.SyscallN(l.vtbl.ClearRenderTargetView,
		uintptr(unsafe.Pointer(l)),
		handle.Ptr,
		uintptr(unsafe.Pointer(color)),
		0, // NumRects
		0) // pRects
}

func (l *GraphicsCommandList) Release() {
	release(unsafe.Pointer(l), l.vtbl.Release)
}
