// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

// Win32 virtual-key codes to Key values.
var keymap = [256]Key{
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0D: KeyReturn,
	0x1B: KeyEsc,
	0x20: KeySpace,
	0x25: KeyLeft,
	0x26: KeyUp,
	0x27: KeyRight,
	0x28: KeyDown,
	0x30: Key0,
	0x31: Key1,
	0x32: Key2,
	0x33: Key3,
	0x34: Key4,
	0x35: Key5,
	0x36: Key6,
	0x37: Key7,
	0x38: Key8,
	0x39: Key9,
	0x41: KeyA,
	0x42: KeyB,
	0x43: KeyC,
	0x44: KeyD,
	0x45: KeyE,
	0x46: KeyF,
	0x47: KeyG,
	0x48: KeyH,
	0x49: KeyI,
	0x4A: KeyJ,
	0x4B: KeyK,
	0x4C: KeyL,
	0x4D: KeyM,
	0x4E: KeyN,
	0x4F: KeyO,
	0x50: KeyP,
	0x51: KeyQ,
	0x52: KeyR,
	0x53: KeyS,
	0x54: KeyT,
	0x55: KeyU,
	0x56: KeyV,
	0x57: KeyW,
	0x58: KeyX,
	0x59: KeyY,
	0x5A: KeyZ,
}
