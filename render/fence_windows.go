// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/gviegas/dxtri/internal/d3d12"
)

// fenceSync pairs a GPU fence with an auto-reset OS event
// for CPU waits.
// The fence starts at 0 and next starts at 1; every frame
// signals next on the queue, waits for it and increments.
// The event is the only non-reference-counted handle in
// the renderer and must be closed on every exit path.
type fenceSync struct {
	fence *d3d12.Fence
	event windows.Handle
	// next is the value the next signal will use.
	next uint64
	// signaled is the last value handed to the queue.
	signaled uint64
}

func newFenceSync(dev *d3d12.Device) (*fenceSync, error) {
	fence, err := dev.CreateFence(0, d3d12.FENCE_FLAG_NONE)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSync, err)
	}
	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		fence.Release()
		return nil, fmt.Errorf("%w: %w", ErrSync, err)
	}
	return &fenceSync{fence: fence, event: event, next: 1}, nil
}

// waitFor blocks until the fence's completed value reaches
// v. It returns immediately when the fence already crossed
// v. The wait is infinite; a hung GPU hangs the caller.
func (s *fenceSync) waitFor(v uint64) error {
	if s.fence.GetCompletedValue() >= v {
		return nil
	}
	if err := s.fence.SetEventOnCompletion(v, s.event); err != nil {
		return fmt.Errorf("%w: %w", ErrSync, err)
	}
	if _, err := windows.WaitForSingleObject(s.event, windows.INFINITE); err != nil {
		return fmt.Errorf("%w: %w", ErrSync, err)
	}
	return nil
}

// signalAndWait signals the fence on the queue with the
// next value, blocks until the GPU reaches it and advances
// the counter. On return, every prior submission on the
// queue has completed.
func (s *fenceSync) signalAndWait(queue *d3d12.CommandQueue) error {
	v := s.next
	if err := queue.Signal(s.fence, v); err != nil {
		return fmt.Errorf("%w: %w", ErrSync, err)
	}
	s.signaled = v
	if err := s.waitFor(v); err != nil {
		return err
	}
	s.next++
	return nil
}

// gpuIdle reports whether the GPU has completed everything
// signaled so far.
func (s *fenceSync) gpuIdle() bool {
	return s.fence.GetCompletedValue() >= s.signaled
}

func (s *fenceSync) destroy() {
	if s.event != 0 {
		windows.CloseHandle(s.event)
		s.event = 0
	}
	if s.fence != nil {
		s.fence.Release()
		s.fence = nil
	}
}
