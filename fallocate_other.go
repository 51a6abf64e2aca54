//go:build !linux && !darwin

package hmapsizes

import "os"

// fallocateFile sizes the generated file before it is mapped. Disk blocks
// may not be reserved on these platforms.
func fallocateFile(file *os.File, size int64) error {
	return file.Truncate(size)
}
