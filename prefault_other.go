//go:build !linux

package hmapsizes

func prefaultRegion(data []byte) {}
