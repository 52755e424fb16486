// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"syscall"
	"unsafe"
)

type dxgiObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type factory4Vtbl struct {
	dxgiObjectVtbl
	// IDXGIFactory.
	EnumAdapters          uintptr
	MakeWindowAssociation uintptr
	GetWindowAssociation  uintptr
	CreateSwapChain       uintptr
	CreateSoftwareAdapter uintptr
	// IDXGIFactory1.
	EnumAdapters1 uintptr
	IsCurrent     uintptr
	// IDXGIFactory2.
	IsWindowedStereoEnabled       uintptr
	CreateSwapChainForHwnd        uintptr
	CreateSwapChainForCoreWindow  uintptr
	GetSharedResourceAdapterLuid  uintptr
	RegisterStereoStatusWindow    uintptr
	RegisterStereoStatusEvent     uintptr
	UnregisterStereoStatus        uintptr
	RegisterOcclusionStatusWindow uintptr
	RegisterOcclusionStatusEvent  uintptr
	UnregisterOcclusionStatus     uintptr
	CreateSwapChainForComposition uintptr
	// IDXGIFactory3.
	GetCreationFlags uintptr
	// IDXGIFactory4.
	EnumAdapterByLuid uintptr
	EnumWarpAdapter   uintptr
}

// Factory4 wraps IDXGIFactory4.
type Factory4 struct {
	vtbl *factory4Vtbl
}

// CreateSwapChainForHwnd creates a swap chain bound to a
// native window, fed by the given direct queue.
func (f *Factory4) CreateSwapChainForHwnd(queue *CommandQueue, hwnd uintptr, desc *SwapChainDesc1) (*SwapChain1, error) {
	var sc *SwapChain1
	hr, _, _ := syscall.SyscallN(f.vtbl.CreateSwapChainForHwnd,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(queue)),
		hwnd,
		uintptr(unsafe.Pointer(desc)),
		0, // pFullscreenDesc
		0, // pRestrictToOutput
		uintptr(unsafe.Pointer(&sc)))
	if err := hresult("IDXGIFactory2::CreateSwapChainForHwnd", hr); err != nil {
		return nil, err
	}
	return sc, nil
}

func (f *Factory4) Release() {
	release(unsafe.Pointer(f), f.vtbl.Release)
}

type swapChain3Vtbl struct {
	dxgiObjectVtbl
	// IDXGIDeviceSubObject.
	GetDevice uintptr
	// IDXGISwapChain.
	Present             uintptr
	GetBuffer           uintptr
	SetFullscreenState  uintptr
	GetFullscreenState  uintptr
	GetDesc             uintptr
	ResizeBuffers       uintptr
	ResizeTarget        uintptr
	GetContainingOutput uintptr
	GetFrameStatistics  uintptr
	GetLastPresentCount uintptr
	// IDXGISwapChain1.
	GetDesc1                 uintptr
	GetFullscreenDesc        uintptr
	GetHwnd                  uintptr
	GetCoreWindow            uintptr
	Present1                 uintptr
	IsTemporaryMonoSupported uintptr
	GetRestrictToOutput      uintptr
	SetBackgroundColor       uintptr
	GetBackgroundColor       uintptr
	SetRotation              uintptr
	GetRotation              uintptr
	// IDXGISwapChain2.
	SetSourceSize                 uintptr
	GetSourceSize                 uintptr
	SetMaximumFrameLatency        uintptr
	GetMaximumFrameLatency        uintptr
	GetFrameLatencyWaitableObject uintptr
	SetMatrixTransform            uintptr
	GetMatrixTransform            uintptr
	// IDXGISwapChain3.
	GetCurrentBackBufferIndex uintptr
	CheckColorSpaceSupport    uintptr
	SetColorSpace1            uintptr
	ResizeBuffers1            uintptr
}

// SwapChain1 wraps IDXGISwapChain1, the interface that
// CreateSwapChainForHwnd returns. Only the SwapChain3
// view obtained through QueryInterface3 is used for
// presentation.
type SwapChain1 struct {
	vtbl *swapChain3Vtbl
}

// QueryInterface3 returns the IDXGISwapChain3 view of the
// swap chain.
func (s *SwapChain1) QueryInterface3() (*SwapChain3, error) {
	var sc3 *SwapChain3
	hr, _, _ := syscall.SyscallN(s.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&iidIDXGISwapChain3)),
		uintptr(unsafe.Pointer(&sc3)))
	if err := hresult("IDXGISwapChain1::QueryInterface", hr); err != nil {
		return nil, err
	}
	return sc3, nil
}

func (s *SwapChain1) Release() {
	release(unsafe.Pointer(s), s.vtbl.Release)
}

// SwapChain3 wraps IDXGISwapChain3.
type SwapChain3 struct {
	vtbl *swapChain3Vtbl
}

func (s *SwapChain3) Present(syncInterval, flags uint32) error {
	hr, _, _ := syscall.SyscallN(s.vtbl.Present,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags))
	return hresult("IDXGISwapChain::Present", hr)
}

func (s *SwapChain3) GetBuffer(buffer uint32) (*Resource, error) {
	var r *Resource
	hr, _, _ := syscall.SyscallN(s.vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(buffer),
		uintptr(unsafe.Pointer(&iidID3D12Resource)),
		uintptr(unsafe.Pointer(&r)))
	if err := hresult("IDXGISwapChain::GetBuffer", hr); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *SwapChain3) GetCurrentBackBufferIndex() uint32 {
	i, _, _ := syscall.SyscallN(s.vtbl.GetCurrentBackBufferIndex,
		uintptr(unsafe.Pointer(s)))
	return uint32(i)
}

func (s *SwapChain3) Release() {
	release(unsafe.Pointer(s), s.vtbl.Release)
}
