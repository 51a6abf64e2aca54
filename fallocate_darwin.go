//go:build darwin

package hmapsizes

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes for the generated file before it is
// mapped, using F_PREALLOCATE where the filesystem allows it.
func fallocateFile(file *os.File, size int64) error {
	fst := unix.Fstore_t{
		Flags:   unix.F_ALLOCATEALL,
		Posmode: unix.F_PEOFPOSMODE,
		Length:  size,
	}
	// F_PREALLOCATE only reserves space; the size is set by Ftruncate either way.
	_ = unix.FcntlFstore(file.Fd(), unix.F_PREALLOCATE, &fst)
	return unix.Ftruncate(int(file.Fd()), size)
}
