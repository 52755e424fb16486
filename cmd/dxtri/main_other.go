// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "dxtri requires Windows")
	os.Exit(1)
}
