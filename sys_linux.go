package memstone

import (
	"golang.org/x/sys/unix"
)

// Mmap allocates page-backed memory with anonymous private mappings,
// bypassing the Go heap entirely. Like Std it is safe for concurrent use,
// the kernel mediates every call. Intended as a backing allocator for
// large arena or pool buffers.
var Mmap Allocator = mmapAllocator{}

type mmapAllocator struct{}

func (mmapAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return b
}

func (m mmapAllocator) Realloc(b []byte, newSize int) []byte {
	if newSize <= 0 {
		m.Free(b)
		return nil
	}
	if newSize <= len(b) {
		return b[:newSize]
	}
	nb := m.Alloc(newSize)
	if nb == nil {
		return nil
	}
	copy(nb, b)
	m.Free(b)
	return nb
}

func (m mmapAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	// munmap needs the original mapping length
	_ = unix.Munmap(b[:cap(b)])
}
