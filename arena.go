package memstone

import (
	"fmt"

	"github.com/fagongzi/util/hack"
)

var _ Allocator = (*Arena)(nil)

// Arena is a linear allocator over one contiguous buffer: allocation bumps
// a cursor, reclamation only happens in stack (LIFO) order or in bulk via
// Reset. Typical usage is one arena per scope (a frame, a request), reset
// once per cycle.
//
// An Arena is not goroutine-safe.
type Arena struct {
	buf  []byte
	head int
	opts options
}

// NewArena creates an arena of capacity bytes, acquired from the backing
// allocator.
func NewArena(capacity int, opts ...Option) *Arena {
	if capacity <= 0 {
		panic(fmt.Sprintf("memstone: invalid arena capacity %d", capacity))
	}
	a := &Arena{}
	for _, opt := range opts {
		opt(&a.opts)
	}
	a.opts.adjust()
	a.buf = a.opts.backing.Alloc(capacity)
	if a.buf == nil {
		panic(fmt.Sprintf("memstone: arena backing allocation of %d bytes failed", capacity))
	}
	return a
}

// Alloc returns the next size bytes of the buffer, rounding the cursor
// advance up to Alignment. Returns nil if size <= 0 or the rounded request
// does not fit; a failed request leaves the arena untouched.
func (a *Arena) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	aligned := alignUp(size, Alignment)
	if a.head+aligned > len(a.buf) {
		return nil
	}
	b := a.buf[a.head : a.head+size : a.head+aligned]
	a.head += aligned
	return b
}

// Realloc grows or shrinks b in place when b is the most recent
// allocation, keeping its address. Anything older is copied into a fresh
// allocation and the old bytes are abandoned where they lie, arenas never
// reclaim non-trailing space.
func (a *Arena) Realloc(b []byte, newSize int) []byte {
	if newSize <= 0 {
		a.Free(b)
		return nil
	}
	off := bufOffset(a.buf, b)
	if off >= 0 && off+alignUp(len(b), Alignment) == a.head {
		newHead := off + alignUp(newSize, Alignment)
		if newHead > len(a.buf) {
			return nil
		}
		a.head = newHead
		return a.buf[off : off+newSize : newHead]
	}
	nb := a.Alloc(newSize)
	if nb == nil {
		return nil
	}
	copy(nb, b)
	return nb
}

// Free rolls the cursor back over b if b is the most recent allocation.
// Freeing anything else is a silent no-op: the arena can only reclaim in
// last-in-first-out order, callers needing arbitrary-order release want a
// Pool or Std instead.
func (a *Arena) Free(b []byte) {
	off := bufOffset(a.buf, b)
	if off < 0 {
		return
	}
	if off+alignUp(len(b), Alignment) == a.head {
		a.head = off
	}
}

// Reset rolls the cursor back to zero, invalidating every previously
// returned slice.
func (a *Arena) Reset() {
	a.head = 0
}

// Close returns the backing buffer to the backing allocator. Outstanding
// slices must not be used afterwards. Close is idempotent; operations on
// a closed arena fail with the nil marker.
func (a *Arena) Close() {
	if a.buf == nil {
		return
	}
	a.opts.backing.Free(a.buf)
	a.buf = nil
	a.head = 0
}

// AllocString copies s into the arena and returns a zero-copy view of the
// stored bytes. The second return is false when the arena cannot hold s.
// The string follows the arena's lifetime rules like any other allocation.
func (a *Arena) AllocString(s string) (string, bool) {
	b := a.Alloc(len(s))
	if b == nil {
		return "", false
	}
	copy(b, s)
	return hack.SliceToString(b), true
}
