// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"unsafe"
)

// Enumerations and flags, named after their C counterparts
// minus the D3D12_/DXGI_ prefixes (DXGI formats keep theirs
// to avoid clashing with D3D12 names).
const (
	FEATURE_LEVEL_11_0 = 0xb000

	COMMAND_LIST_TYPE_DIRECT = 0

	COMMAND_QUEUE_FLAG_NONE = 0

	DESCRIPTOR_HEAP_TYPE_RTV  = 2
	DESCRIPTOR_HEAP_FLAG_NONE = 0

	DXGI_FORMAT_UNKNOWN            = 0
	DXGI_FORMAT_R32G32B32A32_FLOAT = 2
	DXGI_FORMAT_R32G32B32_FLOAT    = 6
	DXGI_FORMAT_R8G8B8A8_UNORM     = 28

	DXGI_USAGE_RENDER_TARGET_OUTPUT = 0x20

	DXGI_SWAP_EFFECT_FLIP_DISCARD = 4

	HEAP_TYPE_DEFAULT  = 1
	HEAP_TYPE_UPLOAD   = 2
	HEAP_TYPE_READBACK = 3

	CPU_PAGE_PROPERTY_UNKNOWN = 0
	MEMORY_POOL_UNKNOWN       = 0

	HEAP_FLAG_NONE = 0

	RESOURCE_DIMENSION_BUFFER    = 1
	RESOURCE_DIMENSION_TEXTURE2D = 3

	TEXTURE_LAYOUT_UNKNOWN   = 0
	TEXTURE_LAYOUT_ROW_MAJOR = 1

	RESOURCE_FLAG_NONE                = 0
	RESOURCE_FLAG_ALLOW_RENDER_TARGET = 0x1

	RESOURCE_STATE_COMMON        = 0
	RESOURCE_STATE_PRESENT       = 0
	RESOURCE_STATE_RENDER_TARGET = 0x4
	RESOURCE_STATE_COPY_DEST     = 0x400
	RESOURCE_STATE_COPY_SOURCE   = 0x800
	RESOURCE_STATE_GENERIC_READ  = 0xac3

	RESOURCE_BARRIER_TYPE_TRANSITION  = 0
	RESOURCE_BARRIER_FLAG_NONE        = 0
	RESOURCE_BARRIER_ALL_SUBRESOURCES = 0xffffffff

	FENCE_FLAG_NONE = 0

	ROOT_SIGNATURE_VERSION_1 = 1

	ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT = 0x1

	INPUT_CLASSIFICATION_PER_VERTEX_DATA = 0

	PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE = 3

	// D3D_PRIMITIVE_TOPOLOGY value for IASetPrimitiveTopology.
	PRIMITIVE_TOPOLOGY_TRIANGLELIST = 4

	FILL_MODE_SOLID = 3
	CULL_MODE_NONE  = 1
	CULL_MODE_BACK  = 3

	BLEND_ZERO   = 1
	BLEND_ONE    = 2
	BLEND_OP_ADD = 1

	LOGIC_OP_NOOP = 4

	COLOR_WRITE_ENABLE_ALL = 0xf

	DEPTH_WRITE_MASK_ALL       = 1
	COMPARISON_FUNC_LESS       = 2
	COMPARISON_FUNC_ALWAYS     = 8
	STENCIL_OP_KEEP            = 1
	DEFAULT_STENCIL_READ_MASK  = 0xff
	DEFAULT_STENCIL_WRITE_MASK = 0xff

	TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX = 0
	TEXTURE_COPY_TYPE_PLACED_FOOTPRINT  = 1

	// Readback row pitch alignment for texture copies.
	TEXTURE_DATA_PITCH_ALIGNMENT = 256

	MIN_DEPTH = 0.0
	MAX_DEPTH = 1.0

	COMPILE_DEBUG             = 1 << 0
	COMPILE_SKIP_OPTIMIZATION = 1 << 2
	COMPILE_ENABLE_STRICTNESS = 1 << 11
)

type CommandQueueDesc struct {
	Type     int32
	Priority int32
	Flags    uint32
	NodeMask uint32
}

type SampleDesc struct {
	Count   uint32
	Quality uint32
}

type SwapChainDesc1 struct {
	Width       uint32
	Height      uint32
	Format      uint32
	Stereo      int32
	SampleDesc  SampleDesc
	BufferUsage uint32
	BufferCount uint32
	Scaling     uint32
	SwapEffect  uint32
	AlphaMode   uint32
	Flags       uint32
}

type DescriptorHeapDesc struct {
	Type           int32
	NumDescriptors uint32
	Flags          uint32
	NodeMask       uint32
}

// CPUDescriptorHandle addresses a descriptor in a
// CPU-visible descriptor heap.
type CPUDescriptorHandle struct {
	Ptr uintptr
}

// Offset advances the handle by n descriptors of the
// given stride. The stride must come from
// Device.GetDescriptorHandleIncrementSize.
func (h CPUDescriptorHandle) Offset(n int, stride uint32) CPUDescriptorHandle {
	return CPUDescriptorHandle{Ptr: h.Ptr + uintptr(n)*uintptr(stride)}
}

type RootSignatureDesc struct {
	NumParameters     uint32
	PParameters       uintptr
	NumStaticSamplers uint32
	PStaticSamplers   uintptr
	Flags             uint32
}

type ShaderBytecode struct {
	PShaderBytecode unsafe.Pointer
	BytecodeLength  uintptr
}

type StreamOutputDesc struct {
	PSODeclaration   uintptr
	NumEntries       uint32
	PBufferStrides   uintptr
	NumStrides       uint32
	RasterizedStream uint32
}

type RenderTargetBlendDesc struct {
	BlendEnable           int32
	LogicOpEnable         int32
	SrcBlend              int32
	DestBlend             int32
	BlendOp               int32
	SrcBlendAlpha         int32
	DestBlendAlpha        int32
	BlendOpAlpha          int32
	LogicOp               int32
	RenderTargetWriteMask uint8
	_                     [3]byte
}

type BlendDesc struct {
	AlphaToCoverageEnable  int32
	IndependentBlendEnable int32
	RenderTarget           [8]RenderTargetBlendDesc
}

type RasterizerDesc struct {
	FillMode              int32
	CullMode              int32
	FrontCounterClockwise int32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       int32
	MultisampleEnable     int32
	AntialiasedLineEnable int32
	ForcedSampleCount     uint32
	ConservativeRaster    int32
}

type DepthStencilOpDesc struct {
	StencilFailOp      int32
	StencilDepthFailOp int32
	StencilPassOp      int32
	StencilFunc        int32
}

type DepthStencilDesc struct {
	DepthEnable      int32
	DepthWriteMask   int32
	DepthFunc        int32
	StencilEnable    int32
	StencilReadMask  uint8
	StencilWriteMask uint8
	_                [2]byte
	FrontFace        DepthStencilOpDesc
	BackFace         DepthStencilOpDesc
}

type InputElementDesc struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

type InputLayoutDesc struct {
	PInputElementDescs *InputElementDesc
	NumElements        uint32
}

type CachedPipelineState struct {
	PCachedBlob           uintptr
	CachedBlobSizeInBytes uintptr
}

type GraphicsPipelineStateDesc struct {
	PRootSignature        *RootSignature
	VS                    ShaderBytecode
	PS                    ShaderBytecode
	DS                    ShaderBytecode
	HS                    ShaderBytecode
	GS                    ShaderBytecode
	StreamOutput          StreamOutputDesc
	BlendState            BlendDesc
	SampleMask            uint32
	RasterizerState       RasterizerDesc
	DepthStencilState     DepthStencilDesc
	InputLayout           InputLayoutDesc
	IBStripCutValue       int32
	PrimitiveTopologyType int32
	NumRenderTargets      uint32
	RTVFormats            [8]uint32
	DSVFormat             uint32
	SampleDesc            SampleDesc
	NodeMask              uint32
	CachedPSO             CachedPipelineState
	Flags                 uint32
}

type HeapProperties struct {
	Type                 int32
	CPUPageProperty      int32
	MemoryPoolPreference int32
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

type ResourceDesc struct {
	Dimension        int32
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           uint32
	SampleDesc       SampleDesc
	Layout           int32
	Flags            uint32
}

// ClearValue is the color form of D3D12_CLEAR_VALUE.
type ClearValue struct {
	Format uint32
	Color  [4]float32
}

type Range struct {
	Begin uintptr
	End   uintptr
}

type VertexBufferView struct {
	BufferLocation uint64
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type ResourceTransitionBarrier struct {
	PResource   *Resource
	Subresource uint32
	StateBefore uint32
	StateAfter  uint32
}

// ResourceBarrierTransition is the transition form of
// D3D12_RESOURCE_BARRIER (the union admits only the
// largest member, which is the transition).
type ResourceBarrierTransition struct {
	Type       int32
	Flags      uint32
	Transition ResourceTransitionBarrier
}

type SubresourceFootprint struct {
	Format   uint32
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch uint32
}

type PlacedSubresourceFootprint struct {
	Offset    uint64
	Footprint SubresourceFootprint
}

// TextureCopyLocationPlacedFootprint is the placed
// footprint form of D3D12_TEXTURE_COPY_LOCATION.
type TextureCopyLocationPlacedFootprint struct {
	PResource       *Resource
	Type            int32
	_               uint32
	PlacedFootprint PlacedSubresourceFootprint
}

// TextureCopyLocationSubresourceIndex is the subresource
// index form of D3D12_TEXTURE_COPY_LOCATION. The padding
// matches the size of the union's largest member.
type TextureCopyLocationSubresourceIndex struct {
	PResource        *Resource
	Type             int32
	_                uint32
	SubresourceIndex uint32
	_                [28]byte
}

type Box struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}
