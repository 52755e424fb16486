// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// recorder is the allocator/list pair every frame records
// into. There is exactly one of each; the synchronous wait
// at the end of each frame is what makes resetting them
// safe.
type recorder struct {
	alloc *d3d12.CommandAllocator
	list  *d3d12.GraphicsCommandList
}

// newRecorder creates the pair. The list comes back open,
// so it is closed right away to let every frame start with
// the same Reset call.
func newRecorder(dev *d3d12.Device, pso *d3d12.PipelineState) (*recorder, error) {
	alloc, err := dev.CreateCommandAllocator(d3d12.COMMAND_LIST_TYPE_DIRECT)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	list, err := dev.CreateCommandList(0, d3d12.COMMAND_LIST_TYPE_DIRECT, alloc, pso)
	if err != nil {
		alloc.Release()
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	if err := list.Close(); err != nil {
		list.Release()
		alloc.Release()
		return nil, fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	return &recorder{alloc: alloc, list: list}, nil
}

// begin reclaims the allocator and reopens the list with
// pso as initial state.
// Precondition: the GPU finished consuming everything
// previously recorded from this allocator.
func (r *recorder) begin(pso *d3d12.PipelineState) error {
	if err := r.alloc.Reset(); err != nil {
		return fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	if err := r.list.Reset(r.alloc, pso); err != nil {
		return fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	return nil
}

// end closes the list and submits it to the queue.
func (r *recorder) end(queue *d3d12.CommandQueue) error {
	if err := r.list.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrGpuCall, err)
	}
	queue.ExecuteCommandLists([]*d3d12.GraphicsCommandList{r.list})
	return nil
}

func (r *recorder) destroy() {
	if r.list != nil {
		r.list.Release()
		r.list = nil
	}
	if r.alloc != nil {
		r.alloc.Release()
		r.alloc = nil
	}
}
