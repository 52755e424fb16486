// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearRGBA is clearColor as R8G8B8A8_UNORM bytes.
var clearRGBA = color.RGBA{R: 51, G: 102, B: 153, A: 255}

// newTestRenderer creates a headless renderer or skips the
// test when the host has no usable D3D12 device.
func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := newHeadless()
	if err != nil {
		if errors.Is(err, ErrDeviceInit) {
			t.Skipf("no usable D3D12 device: %v", err)
		}
		t.Fatalf("newHeadless: %v", err)
	}
	t.Cleanup(r.Destroy)
	return r
}

func capturedFrame(t *testing.T, r *Renderer) *image.RGBA {
	t.Helper()
	img, err := r.out.(*captureOutput).readPixels()
	require.NoError(t, err)
	return img
}

// assertPixelNear checks each channel within tol.
func assertPixelNear(t *testing.T, img *image.RGBA, x, y int, want color.RGBA, tol int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	for i, d := range []int{
		int(got.R) - int(want.R),
		int(got.G) - int(want.G),
		int(got.B) - int(want.B),
		int(got.A) - int(want.A),
	} {
		if d < -tol || d > tol {
			t.Fatalf("pixel (%d, %d) channel %d: want %v ±%d, got %v",
				x, y, i, want, tol, got)
		}
	}
}

func TestClearOnly(t *testing.T) {
	r := newTestRenderer(t)
	r.noDraw = true
	require.NoError(t, r.Frame())
	img := capturedFrame(t, r)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if got := img.RGBAAt(x, y); got != clearRGBA {
				t.Fatalf("pixel (%d, %d): want %v, got %v", x, y, clearRGBA, got)
			}
		}
	}
}

func TestTriangle(t *testing.T) {
	r := newTestRenderer(t)
	require.NoError(t, r.Frame())
	img := capturedFrame(t, r)

	// Vertex colors dominate near the corners.
	assertPixelNear(t, img, 400, 155, color.RGBA{R: 255, A: 255}, 8)
	assertPixelNear(t, img, 205, 445, color.RGBA{G: 255, A: 255}, 8)
	assertPixelNear(t, img, 595, 445, color.RGBA{B: 255, A: 255}, 8)

	// Outside the triangle only the clear remains.
	assert.Equal(t, clearRGBA, img.RGBAAt(10, 10))

	// The centroid is an opaque interior blend.
	c := img.RGBAAt(400, 300)
	assert.EqualValues(t, 255, c.A)
	assert.NotEqual(t, clearRGBA, c)
	assert.Positive(t, int(c.R)+int(c.G)+int(c.B))

	name := filepath.Join(t.TempDir(), "triangle.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	t.Logf("frame written to %s", name)
}

func TestSteadyState(t *testing.T) {
	r := newTestRenderer(t)
	const frames = 60
	for i := 0; i < frames; i++ {
		// A 2-buffer chain rotates 0, 1, 0, 1...
		require.EqualValues(t, i%bufferCount, r.FrameIndex(), "frame %d", i)
		require.NoError(t, r.Frame())
	}
	assert.EqualValues(t, frames+1, r.NextFenceValue())
	assert.GreaterOrEqual(t, r.syn.fence.GetCompletedValue(), uint64(frames))
}

func TestAllocatorSafety(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}
	r := newTestRenderer(t)
	// Frame rejects the allocator reset when the fence has
	// not completed the previous frame's value.
	for i := 0; i < 1000; i++ {
		if err := r.Frame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}

func TestTeardown(t *testing.T) {
	r := newTestRenderer(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Frame())
	}
	assert.EqualValues(t, 6, r.NextFenceValue())
	// Destroy closes the fence event exactly once; further
	// calls must be no-ops.
	r.Destroy()
	r.Destroy()
}

func TestShaderCompileError(t *testing.T) {
	r := newTestRenderer(t)
	_ = r // only needed to gate on D3D12 availability
	_, err := compileShader("this is not hlsl", "vs_5_0")
	require.ErrorIs(t, err, ErrShaderCompile)
	assert.Contains(t, err.Error(), "vs_5_0")
	// The compiler diagnostic rides along in the message.
	assert.Greater(t, len(err.Error()), len(ErrShaderCompile.Error())+len("vs_5_0"))
}

func TestFenceWait(t *testing.T) {
	r := newTestRenderer(t)
	syn, err := newFenceSync(r.dev.dev)
	require.NoError(t, err)
	defer syn.destroy()

	// Already-completed values return immediately.
	require.NoError(t, syn.waitFor(0))

	// A pending value blocks until the fence crosses it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		syn.fence.Signal(2)
	}()
	require.NoError(t, syn.waitFor(2))
	<-done
	assert.GreaterOrEqual(t, syn.fence.GetCompletedValue(), uint64(2))
}
