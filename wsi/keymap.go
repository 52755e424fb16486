// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build windows

package wsi

// keyFrom returns the Key value that represents an
// OS-specific key code.
// Every supported system must provide an indexable
// var named keymap that contains Key values.
func keyFrom(code int) Key {
	if code < 0 || code >= len(keymap) {
		return KeyUnknown
	}
	return keymap[code]
}
