package hmapsizes

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	hmerrors "github.com/tamirms/hmapsizes/errors"
)

// WriteFile renders t and writes it to path, replacing any existing file.
// The file is pre-allocated to the rendered size and filled through a
// read-write mapping.
func WriteFile(path string, t *Table) error {
	data := t.appendText(nil)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := fallocateFile(file, int64(len(data))); err != nil {
		primaryErr := fmt.Errorf("failed to allocate output file: %w", err)
		return errors.Join(primaryErr, file.Close())
	}

	mm, err := mmap.MapRegion(file, len(data), mmap.RDWR, 0, 0)
	if err != nil {
		primaryErr := fmt.Errorf("failed to mmap output file: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	prefaultRegion(mm)
	copy(mm, data)

	if err := mm.Flush(); err != nil {
		primaryErr := fmt.Errorf("mmap flush failed: %w", err)
		return errors.Join(primaryErr, mm.Unmap(), file.Close())
	}
	if err := mm.Unmap(); err != nil {
		primaryErr := fmt.Errorf("mmap unmap failed: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	return file.Close()
}

// CheckFile reports whether the file at path holds exactly the rendering of
// t. A file of a different length or with a different xxHash64 digest
// returns ErrStaleOutput.
func CheckFile(path string, t *Table) (err error) {
	want := t.appendText(nil)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open generated file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat generated file: %w", err)
	}
	if info.Size() != int64(len(want)) {
		return fmt.Errorf("%w: %s is %d bytes, want %d", hmerrors.ErrStaleOutput, path, info.Size(), len(want))
	}

	fadviseSequential(int(file.Fd()), 0, info.Size())
	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to mmap generated file: %w", err)
	}
	defer func() {
		err = errors.Join(err, mm.Unmap())
	}()

	if got, wantSum := xxhash.Sum64(mm), xxhash.Sum64(want); got != wantSum {
		return fmt.Errorf("%w: %s digest %016x, want %016x", hmerrors.ErrStaleOutput, path, got, wantSum)
	}
	return nil
}
