package memstone

import "unsafe"

// New allocates a zeroed T from the allocator and returns a typed view of
// the storage. Returns nil when the allocator cannot satisfy the request.
// The value lives in allocator storage and follows the owning allocator's
// lifetime rules; it is not tracked by the garbage collector's reachability
// of the pointer alone, keep the allocator alive while the value is in use.
func New[T any](a Allocator) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	zeroFill(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice allocates a zeroed []T of length n from the allocator.
// Returns nil when n <= 0 or the allocator cannot satisfy the request.
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	zeroFill(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// zeroFill arena and pool storage is reused without clearing, typed views
// must not see stale bytes.
func zeroFill(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
