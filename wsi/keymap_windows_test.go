// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import "testing"

func TestKeyFrom(t *testing.T) {
	cases := []struct {
		code int
		want Key
	}{
		{-1, KeyUnknown},
		{1 << 20, KeyUnknown},
		{0x08, KeyBackspace},
		{0x0d, KeyReturn},
		{0x1b, KeyEsc},
		{0x20, KeySpace},
		{0x30, Key0},
		{0x39, Key9},
		{0x41, KeyA},
		{0x5a, KeyZ},
	}
	for _, c := range cases {
		if k := keyFrom(c.code); k != c.want {
			t.Fatalf("keyFrom(%#x): want %d, got %d", c.code, c.want, k)
		}
	}
}
