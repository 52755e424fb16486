// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"log/slog"
)

// Renderer owns every GPU object the demo uses. Creating
// it performs all one-time initialization; destroying it
// releases everything, the fence event included.
// Renderer is not safe for concurrent use. The demo only
// ever touches it from the main thread.
type Renderer struct {
	dev *device
	out output
	rec *recorder
	syn *fenceSync
	pip *pipeline
	vb  *vertexBuffer

	// frameIndex mirrors the output's back buffer index
	// between frames.
	frameIndex uint32

	// noDraw skips the draw step, leaving only the clear.
	noDraw bool
}

// New creates a renderer that presents through a swap chain
// bound to the given native window handle.
func New(hwnd uintptr) (*Renderer, error) {
	return newRenderer(func(d *device) (output, error) {
		return newSwapchainOutput(d, hwnd)
	})
}

// newHeadless creates a renderer whose frames go to
// CPU-readable capture targets instead of a window.
func newHeadless() (*Renderer, error) {
	return newRenderer(func(d *device) (output, error) {
		return newCaptureOutput(d)
	})
}

func newRenderer(newOutput func(*device) (output, error)) (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.dev, err = newDevice(); err != nil {
		return nil, err
	}
	if r.out, err = newOutput(r.dev); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.syn, err = newFenceSync(r.dev.dev); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.pip, err = newPipeline(r.dev.dev); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.rec, err = newRecorder(r.dev.dev, r.pip.pso); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.vb, err = newVertexBuffer(r.dev.dev); err != nil {
		r.Destroy()
		return nil, err
	}
	r.frameIndex = r.out.index()
	slog.Info("renderer initialized",
		"width", width, "height", height, "buffers", bufferCount)
	return r, nil
}

// NextFenceValue returns the value the next frame's signal
// will use. It equals the number of completed frames plus
// one.
func (r *Renderer) NextFenceValue() uint64 {
	return r.syn.next
}

// FrameIndex returns the back buffer the next frame
// renders into.
func (r *Renderer) FrameIndex() uint32 {
	return r.frameIndex
}

// Destroy releases all GPU objects and closes the fence
// event. It waits for the GPU first when any work was
// submitted. Destroy is usable on partially constructed
// renderers, so initialization errors can funnel through
// it.
func (r *Renderer) Destroy() {
	if r.syn != nil && r.syn.signaled > 0 {
		r.syn.waitFor(r.syn.signaled)
	}
	if r.vb != nil {
		r.vb.destroy()
		r.vb = nil
	}
	if r.rec != nil {
		r.rec.destroy()
		r.rec = nil
	}
	if r.pip != nil {
		r.pip.destroy()
		r.pip = nil
	}
	if r.syn != nil {
		r.syn.destroy()
		r.syn = nil
	}
	if r.out != nil {
		r.out.destroy()
		r.out = nil
	}
	if r.dev != nil {
		r.dev.destroy()
		r.dev = nil
	}
}
