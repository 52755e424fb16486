// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
)

var errMissing = errors.New("wsi: no implementation")

func initDummy() {
	newWindow = newWindowDummy
	dispatch = dispatchDummy
	platform = None
}

func newWindowDummy(int, int, string) (Window, error) {
	return nil, errMissing
}

func dispatchDummy() {}
