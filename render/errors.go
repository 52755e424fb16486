// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "errors"

// Errors returned by renderer operations. All of them are
// terminal; callers are expected to tear down and exit.
var (
	// ErrDeviceInit means there is no compatible adapter or
	// that device/swap chain creation failed.
	ErrDeviceInit = errors.New("render: device initialization failed")

	// ErrShaderCompile means HLSL compilation failed. The
	// wrapped chain carries the compiler's diagnostic text.
	ErrShaderCompile = errors.New("render: shader compilation failed")

	// ErrGpuCall means a runtime API call failed.
	ErrGpuCall = errors.New("render: GPU call failed")

	// ErrSync means fence or fence event setup or waiting
	// failed.
	ErrSync = errors.New("render: synchronization failed")
)
