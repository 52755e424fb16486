// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// The shaders pass position and color through. The vertex
// position is promoted to float4 with w = 1.
const (
	vsSource = `
struct VSInput {
	float3 position : POSITION;
	float4 color : COLOR;
};
struct PSInput {
	float4 position : SV_POSITION;
	float4 color : COLOR;
};
PSInput main(VSInput input) {
	PSInput result;
	result.position = float4(input.position, 1.0);
	result.color = input.color;
	return result;
}
`
	psSource = `
struct PSInput {
	float4 position : SV_POSITION;
	float4 color : COLOR;
};
float4 main(PSInput input) : SV_TARGET {
	return input.color;
}
`
)

// Input layout semantic names. D3D12 takes them as
// NUL-terminated C strings whose storage must outlive the
// PSO creation call.
var (
	semPosition = [...]byte{'P', 'O', 'S', 'I', 'T', 'I', 'O', 'N', 0}
	semColor    = [...]byte{'C', 'O', 'L', 'O', 'R', 0}
)

// pipeline bundles the root signature and the PSO. The
// shader blobs are released once the PSO holds the
// bytecode.
type pipeline struct {
	rootSig *d3d12.RootSignature
	pso     *d3d12.PipelineState
}

// compileShader compiles HLSL source for the given target
// profile, entry point main. The compiler diagnostic goes
// to the platform debug stream and into the error chain.
func compileShader(src, target string) (*d3d12.Blob, error) {
	flags := uint32(d3d12.COMPILE_ENABLE_STRICTNESS)
	if debugLayer {
		flags |= d3d12.COMPILE_DEBUG | d3d12.COMPILE_SKIP_OPTIMIZATION
	}
	code, errLog, err := d3d12.Compile([]byte(src), "main", target, flags)
	if err != nil {
		if errLog != "" {
			d3d12.OutputDebugString(errLog)
			return nil, fmt.Errorf("%w: %s: %w: %s", ErrShaderCompile, target, err, errLog)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrShaderCompile, target, err)
	}
	return code, nil
}

// newPipeline creates the empty root signature and the
// triangle PSO: pass-through shaders, the 28-byte vertex
// layout, default rasterizer and blend state, no depth.
func newPipeline(dev *d3d12.Device) (*pipeline, error) {
	sig, err := d3d12.SerializeRootSignature(&d3d12.RootSignatureDesc{
		Flags: d3d12.ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	rootSig, err := dev.CreateRootSignature(0, sig)
	sig.Release()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}

	vs, err := compileShader(vsSource, "vs_5_0")
	if err != nil {
		rootSig.Release()
		return nil, err
	}
	defer vs.Release()
	ps, err := compileShader(psSource, "ps_5_0")
	if err != nil {
		rootSig.Release()
		return nil, err
	}
	defer ps.Release()

	layout := [2]d3d12.InputElementDesc{
		{
			SemanticName:      &semPosition[0],
			Format:            d3d12.DXGI_FORMAT_R32G32B32_FLOAT,
			AlignedByteOffset: 0,
			InputSlotClass:    d3d12.INPUT_CLASSIFICATION_PER_VERTEX_DATA,
		},
		{
			SemanticName:      &semColor[0],
			Format:            d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT,
			AlignedByteOffset: 12,
			InputSlotClass:    d3d12.INPUT_CLASSIFICATION_PER_VERTEX_DATA,
		},
	}

	desc := d3d12.GraphicsPipelineStateDesc{
		PRootSignature: rootSig,
		VS: d3d12.ShaderBytecode{
			PShaderBytecode: vs.GetBufferPointer(),
			BytecodeLength:  vs.GetBufferSize(),
		},
		PS: d3d12.ShaderBytecode{
			PShaderBytecode: ps.GetBufferPointer(),
			BytecodeLength:  ps.GetBufferSize(),
		},
		SampleMask: 0xffffffff,
		RasterizerState: d3d12.RasterizerDesc{
			FillMode:        d3d12.FILL_MODE_SOLID,
			CullMode:        d3d12.CULL_MODE_BACK,
			DepthClipEnable: 1,
		},
		InputLayout: d3d12.InputLayoutDesc{
			PInputElementDescs: &layout[0],
			NumElements:        uint32(len(layout)),
		},
		PrimitiveTopologyType: d3d12.PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE,
		NumRenderTargets:      1,
		SampleDesc:            d3d12.SampleDesc{Count: 1},
	}
	desc.RTVFormats[0] = format
	for i := range desc.BlendState.RenderTarget {
		desc.BlendState.RenderTarget[i] = d3d12.RenderTargetBlendDesc{
			SrcBlend:              d3d12.BLEND_ONE,
			DestBlend:             d3d12.BLEND_ZERO,
			BlendOp:               d3d12.BLEND_OP_ADD,
			SrcBlendAlpha:         d3d12.BLEND_ONE,
			DestBlendAlpha:        d3d12.BLEND_ZERO,
			BlendOpAlpha:          d3d12.BLEND_OP_ADD,
			LogicOp:               d3d12.LOGIC_OP_NOOP,
			RenderTargetWriteMask: d3d12.COLOR_WRITE_ENABLE_ALL,
		}
	}
	// No depth buffer exists; the DSV format is UNKNOWN so
	// depth testing must be disabled.
	desc.DepthStencilState = d3d12.DepthStencilDesc{
		DepthWriteMask:   d3d12.DEPTH_WRITE_MASK_ALL,
		DepthFunc:        d3d12.COMPARISON_FUNC_LESS,
		StencilReadMask:  d3d12.DEFAULT_STENCIL_READ_MASK,
		StencilWriteMask: d3d12.DEFAULT_STENCIL_WRITE_MASK,
		FrontFace: d3d12.DepthStencilOpDesc{
			StencilFailOp:      d3d12.STENCIL_OP_KEEP,
			StencilDepthFailOp: d3d12.STENCIL_OP_KEEP,
			StencilPassOp:      d3d12.STENCIL_OP_KEEP,
			StencilFunc:        d3d12.COMPARISON_FUNC_ALWAYS,
		},
	}
	desc.DepthStencilState.BackFace = desc.DepthStencilState.FrontFace

	pso, err := dev.CreateGraphicsPipelineState(&desc)
	if err != nil {
		rootSig.Release()
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	return &pipeline{rootSig: rootSig, pso: pso}, nil
}

func (p *pipeline) destroy() {
	if p.pso != nil {
		p.pso.Release()
		p.pso = nil
	}
	if p.rootSig != nil {
		p.rootSig.Release()
		p.rootSig = nil
	}
}
