//go:build !nogpu

package main

import (
	"github.com/gogpu/gg"

	// Registers the GPU accelerator; rendering falls back to the CPU
	// rasterizer when no adapter is available.
	_ "github.com/gogpu/gg/gpu"
)

func closeAccelerator() {
	if a := gg.Accelerator(); a != nil {
		a.Close()
	}
}
