package memstone

// Allocator is the memory capability handed to anything that needs
// dynamically-sized memory. The failure marker is a nil slice: exhaustion
// is recoverable and callers are expected to branch on it.
//
// A slice passed to Realloc or Free must be exactly the slice previously
// returned by Alloc or Realloc on the same allocator. This is a caller
// obligation and is not checked on the hot path.
type Allocator interface {
	// Alloc returns a fresh allocation of size bytes, or nil if size <= 0
	// or the allocator is out of space.
	Alloc(size int) []byte
	// Realloc returns a buffer of newSize bytes holding the first
	// min(len(b), newSize) bytes of b. The result may alias b's storage.
	// newSize == 0 frees b and returns nil.
	Realloc(b []byte, newSize int) []byte
	// Free releases b. Allocators without individual release apply their
	// own policy.
	Free(b []byte)
}

// Std is the process-heap allocator. It is safe for concurrent use and is
// the default backing allocator for arenas and pools.
var Std Allocator = stdAllocator{}

type stdAllocator struct{}

func (stdAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (stdAllocator) Realloc(b []byte, newSize int) []byte {
	if newSize <= 0 {
		return nil
	}
	if newSize <= cap(b) {
		return b[:newSize]
	}
	nb := make([]byte, newSize)
	copy(nb, b)
	return nb
}

// Free the garbage collector reclaims heap allocations, nothing to do.
func (stdAllocator) Free([]byte) {
}
