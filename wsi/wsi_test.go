// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"runtime"
	"testing"
)

func TestPlatformInUse(t *testing.T) {
	switch p := PlatformInUse(); p {
	case None, Win32:
	default:
		t.Fatalf("PlatformInUse: unexpected platform: %d", p)
	}
}

func TestNewWindow(t *testing.T) {
	win, err := NewWindow(480, 360, "wsi test")
	if PlatformInUse() == None {
		if err == nil {
			t.Fatal("NewWindow: expected failure on platform None")
		}
		return
	}
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	defer win.Close()
	if w := win.Width(); w != 480 {
		t.Fatalf("win.Width: want 480, got %d", w)
	}
	if h := win.Height(); h != 360 {
		t.Fatalf("win.Height: want 360, got %d", h)
	}
	if s := win.Title(); s != "wsi test" {
		t.Fatalf("win.Title: want \"wsi test\", got %q", s)
	}
	if err := win.SetTitle("retitled"); err != nil {
		t.Fatalf("win.SetTitle: %v", err)
	}
	if s := win.Title(); s != "retitled" {
		t.Fatalf("win.Title: want \"retitled\", got %q", s)
	}
}

func TestWindows(t *testing.T) {
	if PlatformInUse() == None {
		t.Skip("no window system")
	}
	if n := len(Windows()); n != windowCount {
		t.Fatalf("len(Windows): want %d, got %d", windowCount, n)
	}
	prev := windowCount
	wins := make([]Window, 0, 3)
	for i := 0; i < 3; i++ {
		win, err := NewWindow(64, 64, "windows test")
		if err != nil {
			t.Fatalf("NewWindow: %v", err)
		}
		wins = append(wins, win)
	}
	if n := windowCount; n != prev+3 {
		t.Fatalf("windowCount: want %d, got %d", prev+3, n)
	}
	for _, win := range wins {
		win.Close()
	}
	if n := windowCount; n != prev {
		t.Fatalf("windowCount after Close: want %d, got %d", prev, n)
	}
}

func TestMaxWindows(t *testing.T) {
	if PlatformInUse() == None {
		t.Skip("no window system")
	}
	var wins []Window
	defer func() {
		for _, win := range wins {
			win.Close()
		}
	}()
	for windowCount < MaxWindows {
		win, err := NewWindow(32, 32, "max test")
		if err != nil {
			t.Fatalf("NewWindow: %v", err)
		}
		wins = append(wins, win)
	}
	if _, err := NewWindow(32, 32, "one too many"); err == nil {
		t.Fatal("NewWindow: expected failure at MaxWindows")
	}
}

func TestDispatch(t *testing.T) {
	// Must not block nor require a window.
	for i := 0; i < 3; i++ {
		Dispatch()
	}
	if PlatformInUse() == None {
		return
	}
	// Win32 message queues are per-thread; window creation
	// and dispatching must happen on the same one.
	runtime.LockOSThread()
	win, err := NewWindow(120, 90, "dispatch test")
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if err := win.Map(); err != nil {
		t.Fatalf("win.Map: %v", err)
	}
	for i := 0; i < 10; i++ {
		Dispatch()
	}
	if err := win.Unmap(); err != nil {
		t.Fatalf("win.Unmap: %v", err)
	}
	win.Close()
	// Closing the last window posts the quit request, which
	// Dispatch latches.
	Dispatch()
	if !QuitRequested() {
		t.Fatal("QuitRequested: false after the last window closed")
	}
}
