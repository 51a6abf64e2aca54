//go:build linux

package hmapsizes

import "golang.org/x/sys/unix"

// madvPopulateWrite is MADV_POPULATE_WRITE (Linux 5.14+). Older kernels
// answer EINVAL, which is ignored.
const madvPopulateWrite = 23

// prefaultRegion populates the pages of a fresh writable mapping before the
// rendered table is copied in.
func prefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, madvPopulateWrite)
}
