//go:build linux

package hmapsizes

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes for the generated file before it is
// mapped, so a full disk fails here instead of raising SIGBUS on write.
func fallocateFile(file *os.File, size int64) error {
	if err := unix.Fallocate(int(file.Fd()), 0, 0, size); err != nil {
		// Not every filesystem supports fallocate (tmpfs on old kernels, NFS).
		return unix.Ftruncate(int(file.Fd()), size)
	}
	return unix.Ftruncate(int(file.Fd()), size)
}
