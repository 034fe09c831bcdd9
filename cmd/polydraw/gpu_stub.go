//go:build nogpu

package main

func closeAccelerator() {}
