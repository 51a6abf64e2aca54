//go:build !linux

package hmapsizes

func fadviseSequential(fd int, offset, length int64) {}
