// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procUnregisterClassW   = user32.NewProc("UnregisterClassW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procShowWindow         = user32.NewProc("ShowWindow")
	procUpdateWindow       = user32.NewProc("UpdateWindow")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostQuitMessage    = user32.NewProc("PostQuitMessage")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procSetWindowTextW     = user32.NewProc("SetWindowTextW")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
	procGetKeyState        = user32.NewProc("GetKeyState")
	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
)

const (
	_CS_HREDRAW = 0x0002
	_CS_VREDRAW = 0x0001

	_WS_OVERLAPPEDWINDOW = 0x00CF0000

	_CW_USEDEFAULT = ^uintptr(0x7FFFFFFF) // INT(0x80000000)

	_SW_HIDE   = 0
	_SW_NORMAL = 1

	_PM_REMOVE = 0x0001

	_WM_SIZE       = 0x0005
	_WM_CLOSE      = 0x0010
	_WM_DESTROY    = 0x0002
	_WM_QUIT       = 0x0012
	_WM_KEYDOWN    = 0x0100
	_WM_KEYUP      = 0x0101
	_WM_SYSKEYDOWN = 0x0104
	_WM_SYSKEYUP   = 0x0105

	_IDC_ARROW = 32512

	_VK_SHIFT   = 0x10
	_VK_CONTROL = 0x11
	_VK_MENU    = 0x12
	_VK_CAPITAL = 0x14
)

type wndclassexW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type point struct {
	x, y int32
}

type msg struct {
	hwnd    windows.HWND
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
}

type rect struct {
	left, top, right, bottom int32
}

// Handle to self.
var hinst windows.Handle

// Class name (UTF-16, NUL-terminated).
var className *uint16

// initWin32 initializes the Win32 platform.
func initWin32() error {
	h, _, _ := procGetModuleHandleW.Call(0)
	if h == 0 {
		return errors.New("wsi: failed to obtain Win32 instance handle")
	}
	hinst = windows.Handle(h)
	className, _ = windows.UTF16PtrFromString("wsi")
	cursor, _, _ := procLoadCursorW.Call(0, _IDC_ARROW)
	wc := wndclassexW{
		style:         _CS_HREDRAW | _CS_VREDRAW,
		lpfnWndProc:   syscall.NewCallback(wndProcWin32),
		hInstance:     hinst,
		hCursor:       windows.Handle(cursor),
		lpszClassName: className,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	if atom, _, _ := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		className = nil
		hinst = 0
		return errors.New("wsi: failed to register Win32 class")
	}
	newWindow = newWindowWin32
	dispatch = dispatchWin32
	platform = Win32
	return nil
}

// deinitWin32 deinitializes the Win32 platform.
func deinitWin32() {
	if windowCount > 0 {
		for _, w := range createdWindows {
			if w != nil {
				w.Close()
			}
		}
	}
	if hinst != 0 {
		if className != nil {
			procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(hinst))
			className = nil
		}
		hinst = 0
	}
	initDummy()
}

// windowWin32 implements Window.
type windowWin32 struct {
	hwnd   windows.HWND
	width  int
	height int
	title  string
	mapped bool
}

// Windows maps each created window by its native handle so
// that the window procedure can recover the Window value.
var hwndToWin = map[windows.HWND]*windowWin32{}

// newWindowWin32 creates a new window.
func newWindowWin32(width, height int, title string) (Window, error) {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, err
	}
	// The given dimensions refer to the client area.
	r := rect{0, 0, int32(width), int32(height)}
	procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&r)), _WS_OVERLAPPEDWINDOW, 0, 0)
	hwnd, _, _ := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(ptitle)),
		_WS_OVERLAPPEDWINDOW,
		_CW_USEDEFAULT,
		_CW_USEDEFAULT,
		uintptr(r.right-r.left),
		uintptr(r.bottom-r.top),
		0,
		0,
		uintptr(hinst),
		0)
	if hwnd == 0 {
		return nil, errors.New("wsi: failed to create Win32 window")
	}
	win := &windowWin32{
		hwnd:   windows.HWND(hwnd),
		width:  width,
		height: height,
		title:  title,
	}
	hwndToWin[win.hwnd] = win
	return win, nil
}

// HWND returns the native window handle.
// It is meant for swapchain creation.
func (w *windowWin32) HWND() uintptr {
	return uintptr(w.hwnd)
}

// Map makes the window visible.
func (w *windowWin32) Map() error {
	if w.mapped {
		return nil
	}
	procShowWindow.Call(uintptr(w.hwnd), _SW_NORMAL)
	procUpdateWindow.Call(uintptr(w.hwnd))
	w.mapped = true
	return nil
}

// Unmap hides the window.
func (w *windowWin32) Unmap() error {
	if !w.mapped {
		return nil
	}
	procShowWindow.Call(uintptr(w.hwnd), _SW_HIDE)
	w.mapped = false
	return nil
}

// SetTitle sets the window's title.
func (w *windowWin32) SetTitle(title string) error {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	if r, _, _ := procSetWindowTextW.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(ptitle))); r == 0 {
		return errors.New("wsi: failed to set Win32 window title")
	}
	w.title = title
	return nil
}

// Close closes the window.
func (w *windowWin32) Close() {
	if w == nil {
		return
	}
	if w.hwnd != 0 {
		// DestroyWindow sends WM_DESTROY, which performs
		// the bookkeeping in wndProcWin32.
		procDestroyWindow.Call(uintptr(w.hwnd))
	}
	*w = windowWin32{}
}

// Width returns the window's client width.
func (w *windowWin32) Width() int { return w.width }

// Height returns the window's client height.
func (w *windowWin32) Height() int { return w.height }

// Title returns the window's title.
func (w *windowWin32) Title() string { return w.title }

// dispatchWin32 dispatches queued events.
func dispatchWin32() {
	var m msg
	for {
		r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, _PM_REMOVE)
		if r == 0 {
			break
		}
		if m.message == _WM_QUIT {
			quitRequested = true
			continue
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// modMaskWin32 queries the current modifier state.
func modMaskWin32() Modifier {
	var mod Modifier
	if s, _, _ := procGetKeyState.Call(_VK_CAPITAL); s&1 != 0 {
		mod |= ModCapsLock
	}
	if s, _, _ := procGetKeyState.Call(_VK_SHIFT); uint16(s)&0x8000 != 0 {
		mod |= ModShift
	}
	if s, _, _ := procGetKeyState.Call(_VK_CONTROL); uint16(s)&0x8000 != 0 {
		mod |= ModCtrl
	}
	if s, _, _ := procGetKeyState.Call(_VK_MENU); uint16(s)&0x8000 != 0 {
		mod |= ModAlt
	}
	return mod
}

func wndProcWin32(hwnd windows.HWND, message uint32, wprm, lprm uintptr) uintptr {
	switch message {
	case _WM_SIZE:
		if win := hwndToWin[hwnd]; win != nil {
			win.width = int(uint16(lprm))
			win.height = int(uint16(lprm >> 16))
			if windowHandler != nil {
				windowHandler.WindowResize(win, win.width, win.height)
			}
		}
		return 0
	case _WM_KEYDOWN, _WM_SYSKEYDOWN:
		if keyboardHandler != nil {
			keyboardHandler.KeyboardKey(keyFrom(int(wprm)), true, modMaskWin32())
		}
		return 0
	case _WM_KEYUP, _WM_SYSKEYUP:
		if keyboardHandler != nil {
			keyboardHandler.KeyboardKey(keyFrom(int(wprm)), false, modMaskWin32())
		}
		return 0
	case _WM_DESTROY:
		if win := hwndToWin[hwnd]; win != nil {
			delete(hwndToWin, hwnd)
			closeWindow(win)
			if windowHandler != nil {
				windowHandler.WindowClose(win)
			}
			win.hwnd = 0
		}
		if windowCount == 0 {
			procPostQuitMessage.Call(0)
		}
		return 0
	default:
		r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wprm, lprm)
		return r
	}
}
