//go:build linux

package hmapsizes

import "golang.org/x/sys/unix"

// fadviseSequential hints that a generated file is about to be read front to
// back by CheckFile. Errors are ignored.
func fadviseSequential(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_SEQUENTIAL)
}
