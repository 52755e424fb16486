// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package d3d12 provides bindings for the subset of
// Direct3D 12, DXGI and the D3D shader compiler that
// the render package uses.
// COM interfaces are modeled as vtable structs and
// called through syscall; no cgo is involved.
// The layouts assume a 64-bit process.
package d3d12

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d12DLL    = windows.NewLazySystemDLL("d3d12.dll")
	dxgiDLL     = windows.NewLazySystemDLL("dxgi.dll")
	compilerDLL = windows.NewLazySystemDLL("d3dcompiler_47.dll")
	kernel32DLL = windows.NewLazySystemDLL("kernel32.dll")

	procD3D12CreateDevice           = d3d12DLL.NewProc("D3D12CreateDevice")
	procD3D12GetDebugInterface      = d3d12DLL.NewProc("D3D12GetDebugInterface")
	procD3D12SerializeRootSignature = d3d12DLL.NewProc("D3D12SerializeRootSignature")
	procCreateDXGIFactory1          = dxgiDLL.NewProc("CreateDXGIFactory1")
	procD3DCompile                  = compilerDLL.NewProc("D3DCompile")
	procOutputDebugStringW          = kernel32DLL.NewProc("OutputDebugStringW")
)

// Load loads the system libraries that the bindings call
// into. It fails when the system lacks D3D12 support.
func Load() error {
	for _, d := range []*windows.LazyDLL{d3d12DLL, dxgiDLL, compilerDLL} {
		if err := d.Load(); err != nil {
			return fmt.Errorf("d3d12: %w", err)
		}
	}
	return nil
}

// Error is a failed HRESULT from a named call.
type Error struct {
	Op   string
	Code uint32
}

func (e Error) Error() string {
	return fmt.Sprintf("d3d12: %s failed (0x%08X)", e.Op, e.Code)
}

// hresult converts the HRESULT of op into an error value.
// Success codes map to nil.
func hresult(op string, hr uintptr) error {
	if int32(hr) >= 0 {
		return nil
	}
	return Error{Op: op, Code: uint32(hr)}
}

// OutputDebugString writes s to the platform's debug
// output stream.
func OutputDebugString(s string) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return
	}
	procOutputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
}

// Interface identifiers of the interfaces requested
// through creation calls and QueryInterface.
var (
	iidIDXGIFactory4   = windows.GUID{Data1: 0x1bc6ea02, Data2: 0xef36, Data3: 0x464f, Data4: [8]byte{0xbf, 0x0c, 0x21, 0xca, 0x39, 0xe5, 0x16, 0x8a}}
	iidIDXGISwapChain3 = windows.GUID{Data1: 0x94d99bdb, Data2: 0xf1f8, Data3: 0x4ab0, Data4: [8]byte{0xb2, 0x36, 0x7d, 0xa0, 0x17, 0x0e, 0xda, 0xb1}}

	iidID3D12Debug               = windows.GUID{Data1: 0x344488b7, Data2: 0x6846, Data3: 0x474b, Data4: [8]byte{0xb9, 0x89, 0xf0, 0x27, 0x44, 0x82, 0x45, 0xe0}}
	iidID3D12Device              = windows.GUID{Data1: 0x189819f1, Data2: 0x1db6, Data3: 0x4b57, Data4: [8]byte{0xbe, 0x54, 0x18, 0x21, 0x33, 0x9b, 0x85, 0xf7}}
	iidID3D12CommandQueue        = windows.GUID{Data1: 0x0ec870a6, Data2: 0x5d7e, Data3: 0x4c22, Data4: [8]byte{0x8c, 0xfc, 0x5b, 0xaa, 0xe0, 0x76, 0x16, 0xed}}
	iidID3D12CommandAllocator    = windows.GUID{Data1: 0x6102dee4, Data2: 0xaf59, Data3: 0x4b09, Data4: [8]byte{0xb9, 0x99, 0xb4, 0x4d, 0x73, 0xf0, 0x9b, 0x24}}
	iidID3D12GraphicsCommandList = windows.GUID{Data1: 0x5b160d0f, Data2: 0xac1b, Data3: 0x4185, Data4: [8]byte{0x8b, 0xa8, 0xb3, 0xae, 0x42, 0xa5, 0xa4, 0x55}}
	iidID3D12DescriptorHeap      = windows.GUID{Data1: 0x8efb471d, Data2: 0x616c, Data3: 0x4f49, Data4: [8]byte{0x90, 0xf7, 0x12, 0x7b, 0xb7, 0x63, 0xfa, 0x51}}
	iidID3D12Resource            = windows.GUID{Data1: 0x696442be, Data2: 0xa72e, Data3: 0x4059, Data4: [8]byte{0xbc, 0x79, 0x5b, 0x5c, 0x98, 0x04, 0x0f, 0xad}}
	iidID3D12Fence               = windows.GUID{Data1: 0x0a753dcf, Data2: 0xc4d8, Data3: 0x4b91, Data4: [8]byte{0xad, 0xf6, 0xbe, 0x5a, 0x60, 0xd9, 0x5a, 0x76}}
	iidID3D12RootSignature       = windows.GUID{Data1: 0xc54a6b66, Data2: 0x72df, Data3: 0x4ee8, Data4: [8]byte{0x8b, 0xe5, 0xa9, 0x46, 0xa1, 0x42, 0x92, 0x14}}
	iidID3D12PipelineState       = windows.GUID{Data1: 0x765a30f3, Data2: 0xf624, Data3: 0x4c6f, Data4: [8]byte{0xa8, 0x28, 0xac, 0xe9, 0x48, 0x62, 0x24, 0x45}}
)

// iUnknownVtbl is the base of every COM vtable.
type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

func release(obj unsafe.Pointer, fn uintptr) {
	syscall.SyscallN(fn, uintptr(obj))
}

// Blob wraps ID3DBlob.
type Blob struct {
	vtbl *blobVtbl
}

type blobVtbl struct {
	iUnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

func (b *Blob) GetBufferPointer() unsafe.Pointer {
	p, _, _ := syscall.SyscallN(b.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(b)))
	return unsafe.Pointer(p)
}

func (b *Blob) GetBufferSize() uintptr {
	n, _, _ := syscall.SyscallN(b.vtbl.GetBufferSize, uintptr(unsafe.Pointer(b)))
	return n
}

// Bytes returns the blob contents.
// The slice aliases memory owned by the blob and must not
// be used after Release.
func (b *Blob) Bytes() []byte {
	return unsafe.Slice((*byte)(b.GetBufferPointer()), b.GetBufferSize())
}

// String returns the blob contents as text, trimming a
// trailing NUL if present. Error blobs are ASCII.
func (b *Blob) String() string {
	s := b.Bytes()
	if n := len(s); n > 0 && s[n-1] == 0 {
		s = s[:n-1]
	}
	return string(s)
}

func (b *Blob) Release() {
	release(unsafe.Pointer(b), b.vtbl.Release)
}

// CreateDXGIFactory1 creates an IDXGIFactory4.
func CreateDXGIFactory1() (*Factory4, error) {
	var f *Factory4
	hr, _, _ := procCreateDXGIFactory1.Call(
		uintptr(unsafe.Pointer(&iidIDXGIFactory4)),
		uintptr(unsafe.Pointer(&f)))
	if err := hresult("CreateDXGIFactory1", hr); err != nil {
		return nil, err
	}
	return f, nil
}

// CreateDevice creates an ID3D12Device at the given
// minimum feature level. A nil adapter selects the
// system default.
func CreateDevice(adapter unsafe.Pointer, minFeatureLevel uint32) (*Device, error) {
	var d *Device
	hr, _, _ := procD3D12CreateDevice.Call(
		uintptr(adapter),
		uintptr(minFeatureLevel),
		uintptr(unsafe.Pointer(&iidID3D12Device)),
		uintptr(unsafe.Pointer(&d)))
	if err := hresult("D3D12CreateDevice", hr); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDebugInterface returns the ID3D12Debug interface.
// It must be used before device creation.
func GetDebugInterface() (*Debug, error) {
	var d *Debug
	hr, _, _ := procD3D12GetDebugInterface.Call(
		uintptr(unsafe.Pointer(&iidID3D12Debug)),
		uintptr(unsafe.Pointer(&d)))
	if err := hresult("D3D12GetDebugInterface", hr); err != nil {
		return nil, err
	}
	return d, nil
}

// SerializeRootSignature serializes desc at root signature
// version 1. On failure, the serializer's diagnostic text
// is included in the error.
func SerializeRootSignature(desc *RootSignatureDesc) (*Blob, error) {
	var blob, errBlob *Blob
	hr, _, _ := procD3D12SerializeRootSignature.Call(
		uintptr(unsafe.Pointer(desc)),
		ROOT_SIGNATURE_VERSION_1,
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errBlob)))
	if err := hresult("D3D12SerializeRootSignature", hr); err != nil {
		if errBlob != nil {
			defer errBlob.Release()
			return nil, fmt.Errorf("%w: %s", err, errBlob.String())
		}
		return nil, err
	}
	return blob, nil
}

// Compile compiles HLSL source text into bytecode for the
// given entry point and target profile. On failure, the
// compiler's diagnostic text is returned in errLog.
func Compile(src []byte, entry, target string, flags uint32) (code *Blob, errLog string, err error) {
	pentry := append([]byte(entry), 0)
	ptarget := append([]byte(target), 0)
	var blob, errBlob *Blob
	hr, _, _ := procD3DCompile.Call(
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		0, // pSourceName
		0, // pDefines
		0, // pInclude
		uintptr(unsafe.Pointer(&pentry[0])),
		uintptr(unsafe.Pointer(&ptarget[0])),
		uintptr(flags),
		0, // Flags2
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errBlob)))
	if errBlob != nil {
		errLog = errBlob.String()
		errBlob.Release()
	}
	if err := hresult("D3DCompile", hr); err != nil {
		return nil, errLog, err
	}
	return blob, errLog, nil
}
