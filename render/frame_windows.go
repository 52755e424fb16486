// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// clearColor is the per-frame background.
// As R8G8B8A8_UNORM bytes: 51, 102, 153, 255.
var clearColor = [4]float32{0.2, 0.4, 0.6, 1}

// Frame records, submits, presents and synchronizes one
// frame.
//
// The CPU blocks until the GPU finishes before returning,
// which is what makes reusing the single allocator/list
// pair next frame safe. Any error is terminal.
func (r *Renderer) Frame() error {
	// The end-of-frame wait must have completed everything
	// recorded from the allocator.
	if !r.syn.gpuIdle() {
		return fmt.Errorf("%w: allocator reset before GPU completion", ErrSync)
	}
	if err := r.rec.begin(r.pip.pso); err != nil {
		return err
	}
	list := r.rec.list

	list.SetGraphicsRootSignature(r.pip.rootSig)
	list.RSSetViewports([]d3d12.Viewport{{
		Width:    width,
		Height:   height,
		MinDepth: d3d12.MIN_DEPTH,
		MaxDepth: d3d12.MAX_DEPTH,
	}})
	list.RSSetScissorRects([]d3d12.Rect{{Right: width, Bottom: height}})

	target := r.out.target(r.frameIndex)
	list.ResourceBarrier([]d3d12.ResourceBarrierTransition{{
		Type: d3d12.RESOURCE_BARRIER_TYPE_TRANSITION,
		Transition: d3d12.ResourceTransitionBarrier{
			PResource:   target,
			Subresource: d3d12.RESOURCE_BARRIER_ALL_SUBRESOURCES,
			StateBefore: d3d12.RESOURCE_STATE_PRESENT,
			StateAfter:  d3d12.RESOURCE_STATE_RENDER_TARGET,
		},
	}})

	rtv := r.out.rtv(r.frameIndex)
	list.OMSetRenderTargets(1, &rtv)
	list.ClearRenderTargetView(rtv, &clearColor)

	if !r.noDraw {
		list.IASetPrimitiveTopology(d3d12.PRIMITIVE_TOPOLOGY_TRIANGLELIST)
		list.IASetVertexBuffers(0, []d3d12.VertexBufferView{r.vb.view})
		list.DrawInstanced(3, 1, 0, 0)
	}

	list.ResourceBarrier([]d3d12.ResourceBarrierTransition{{
		Type: d3d12.RESOURCE_BARRIER_TYPE_TRANSITION,
		Transition: d3d12.ResourceTransitionBarrier{
			PResource:   target,
			Subresource: d3d12.RESOURCE_BARRIER_ALL_SUBRESOURCES,
			StateBefore: d3d12.RESOURCE_STATE_RENDER_TARGET,
			StateAfter:  r.out.finalState(),
		},
	}})
	r.out.record(list, r.frameIndex)

	if err := r.rec.end(r.dev.queue); err != nil {
		return err
	}
	if err := r.out.present(); err != nil {
		return err
	}
	if err := r.syn.signalAndWait(r.dev.queue); err != nil {
		return err
	}
	r.frameIndex = r.out.index()
	return nil
}
