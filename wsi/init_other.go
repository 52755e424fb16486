// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package wsi

func init() {
	initDummy()
}
