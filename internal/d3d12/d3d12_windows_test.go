// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHresult(t *testing.T) {
	assert.NoError(t, hresult("op", 0))
	assert.NoError(t, hresult("op", 1))
	err := hresult("ID3D12Device::CreateFence", 0x80004005)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID3D12Device::CreateFence")
	assert.Contains(t, err.Error(), "80004005")
}

func TestDescriptorHandleOffset(t *testing.T) {
	h := CPUDescriptorHandle{Ptr: 0x1000}
	assert.Equal(t, uintptr(0x1000), h.Offset(0, 32).Ptr)
	assert.Equal(t, uintptr(0x1040), h.Offset(2, 32).Ptr)
}

// TestDevice exercises the creation path end to end on
// hosts that have D3D12; elsewhere it skips.
func TestDevice(t *testing.T) {
	if err := Load(); err != nil {
		t.Skipf("D3D12 not available: %v", err)
	}
	factory, err := CreateDXGIFactory1()
	if err != nil {
		t.Skipf("no DXGI factory: %v", err)
	}
	defer factory.Release()
	dev, err := CreateDevice(nil, FEATURE_LEVEL_11_0)
	if err != nil {
		t.Skipf("no compatible adapter: %v", err)
	}
	defer dev.Release()

	assert.Positive(t, dev.GetDescriptorHandleIncrementSize(DESCRIPTOR_HEAP_TYPE_RTV))

	fence, err := dev.CreateFence(0, FENCE_FLAG_NONE)
	require.NoError(t, err)
	defer fence.Release()
	assert.EqualValues(t, 0, fence.GetCompletedValue())
	require.NoError(t, fence.Signal(1))
	assert.GreaterOrEqual(t, fence.GetCompletedValue(), uint64(1))

	heap, err := dev.CreateDescriptorHeap(&DescriptorHeapDesc{
		Type:           DESCRIPTOR_HEAP_TYPE_RTV,
		NumDescriptors: 2,
	})
	require.NoError(t, err)
	defer heap.Release()
	assert.NotZero(t, heap.GetCPUDescriptorHandleForHeapStart().Ptr)
}
