package memstone

import "unsafe"

// Alignment every arena allocation is rounded up to this boundary,
// regardless of the request's natural alignment needs.
const Alignment = 16

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// bufOffset returns b's byte offset inside owner, or -1 when b does not
// point into owner. The unsigned subtraction makes a single compare cover
// slices on either side of the buffer.
func bufOffset(owner, b []byte) int {
	if len(b) == 0 || len(owner) == 0 {
		return -1
	}
	off := uintptr(unsafe.Pointer(&b[0])) - uintptr(unsafe.Pointer(&owner[0]))
	if off >= uintptr(len(owner)) {
		return -1
	}
	return int(off)
}
