// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package render draws a colored triangle over a cleared
// background using Direct3D 12.
// It exists to show the explicit GPU model in its smallest
// useful form: one queue, one allocator/list pair, a
// two-buffer swap chain and a fence that serializes the
// CPU against the GPU after every presented frame.
package render
