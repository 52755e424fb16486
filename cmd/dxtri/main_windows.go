// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Dxtri opens an 800x600 window and draws a colored
// triangle with Direct3D 12 until the window is closed.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/gviegas/dxtri/render"
	"github.com/gviegas/dxtri/wsi"
)

// The window and its message pump are bound to the thread
// that creates them.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	if wsi.PlatformInUse() != wsi.Win32 {
		slog.Error("no window system available")
		return 1
	}
	win, err := wsi.NewWindow(800, 600, "Triangle DX12")
	if err != nil {
		slog.Error("window creation failed", "err", err)
		return 1
	}
	defer win.Close()
	win.Map()

	hwnd := win.(interface{ HWND() uintptr }).HWND()
	rend, err := render.New(hwnd)
	if err != nil {
		slog.Error("renderer initialization failed", "err", err)
		return 1
	}
	defer rend.Destroy()

	for !wsi.QuitRequested() {
		wsi.Dispatch()
		if wsi.QuitRequested() {
			break
		}
		if err := rend.Frame(); err != nil {
			slog.Error("frame failed", "err", err)
			return 1
		}
	}
	return 0
}
