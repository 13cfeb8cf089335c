//go:build linux

package smallstring

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// ErrStorageReleased is returned when a released MmapStorage is asked
// to grow again.
var ErrStorageReleased = errors.New("smallstring: storage released")

// MmapStorage is a file-backed Storage. The region lives in a shared
// mapping of a regular file; growth extends the file with fallocate and
// enlarges the mapping in place with mremap, so existing content is
// preserved without a copy. Useful when buffer content should land in a
// file or live outside the Go heap.
type MmapStorage struct {
	file   *os.File
	region []byte // full mapping, len(region) >= size
	size   int    // logical capacity exposed through Bytes
}

// NewMmapStorage creates (or truncates) the file at path and maps size
// bytes of it. At least one page is mapped even for size zero, so the
// first growth can remap in place.
func NewMmapStorage(path string, size int) (*MmapStorage, error) {
	if size < 0 {
		size = 0
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	alloc := size
	if alloc < 1 {
		alloc = os.Getpagesize()
	}
	if err := syscall.Fallocate(int(f.Fd()), 0, 0, int64(alloc)); err != nil {
		f.Close()
		return nil, fmt.Errorf("smallstring: fallocate %s: %w", path, err)
	}
	region, err := syscall.Mmap(int(f.Fd()), 0, alloc,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("smallstring: mmap %s: %w", path, err)
	}
	return &MmapStorage{file: f, region: region, size: size}, nil
}

// Bytes returns the current region.
func (m *MmapStorage) Bytes() []byte {
	return m.region[:m.size]
}

// Resize grows or shrinks the region to exactly n bytes. Shrinking only
// narrows the exposed region; the mapping itself never shrinks.
func (m *MmapStorage) Resize(n int) ([]byte, error) {
	if m.file == nil {
		return nil, ErrStorageReleased
	}
	if n <= len(m.region) {
		m.size = n
		return m.region[:n], nil
	}
	if err := syscall.Fallocate(int(m.file.Fd()), 0, 0, int64(n)); err != nil {
		return nil, fmt.Errorf("smallstring: fallocate: %w", err)
	}
	addr, _, errno := syscall.Syscall6(syscall.SYS_MREMAP,
		uintptr(unsafe.Pointer(&m.region[0])),
		uintptr(len(m.region)), uintptr(n), mremapMayMove, 0, 0)
	if errno != 0 {
		return nil, fmt.Errorf("smallstring: mremap: %w", errno)
	}
	m.region = unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	m.size = n
	return m.region, nil
}

const mremapMayMove = 1

// Release unmaps the region and closes the file. The file itself is
// left in place; remove it separately if it is not wanted.
func (m *MmapStorage) Release() error {
	if m.file == nil {
		return nil
	}
	err := syscall.Munmap(m.region)
	m.region = nil
	m.size = 0
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	m.file = nil
	return err
}
