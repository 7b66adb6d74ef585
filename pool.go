package memstone

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"
)

// linkWidth bytes of each free slot hold the offset of the next free slot.
const linkWidth = 8

var _ Allocator = (*Pool)(nil)

// Pool is a fixed-slot allocator: one contiguous buffer partitioned into
// itemWidth-byte slots, with O(1) Get/Put through an intrusive singly
// linked free list threaded through the first 8 bytes of each free slot.
// Unlike an Arena, slots can be released in any order.
//
// A Pool is not goroutine-safe.
type Pool struct {
	buf        []byte
	itemWidth  int
	nextOffset int
	opts       options
}

// NewPool creates a pool of itemCount slots of itemWidth bytes each, with
// the buffer acquired from the backing allocator. itemWidth must be at
// least 8 to hold a free list link.
func NewPool(itemWidth, itemCount int, opts ...Option) *Pool {
	if itemWidth < linkWidth {
		panic(fmt.Sprintf("memstone: pool item width %d cannot hold a free list link", itemWidth))
	}
	if itemCount <= 0 {
		panic(fmt.Sprintf("memstone: invalid pool item count %d", itemCount))
	}
	p := &Pool{itemWidth: itemWidth}
	for _, opt := range opts {
		opt(&p.opts)
	}
	p.opts.adjust()
	p.buf = p.opts.backing.Alloc(itemWidth * itemCount)
	if p.buf == nil {
		panic(fmt.Sprintf("memstone: pool backing allocation of %d bytes failed", itemWidth*itemCount))
	}
	p.Reset()
	return p
}

// Reset relinks every slot into the free chain, invalidating all
// outstanding slots. Slot i links to slot i+1; the last slot's link lands
// on the capacity itself, which is already past the last valid slot offset
// and so terminates the chain with no special case.
func (p *Pool) Reset() {
	for off := 0; off < len(p.buf); off += p.itemWidth {
		binary.LittleEndian.PutUint64(p.buf[off:], uint64(off+p.itemWidth))
	}
	p.nextOffset = 0
}

// exhausted reports whether nextOffset no longer names a whole slot. Also
// catches garbage links gone negative through the uint64 round trip.
func (p *Pool) exhausted() bool {
	return p.nextOffset < 0 || p.nextOffset > len(p.buf)-p.itemWidth
}

// Get pops a slot off the free chain, or returns nil when the pool is
// exhausted. The returned slice is the whole slot; its first 8 bytes
// belong to the caller until Put.
func (p *Pool) Get() []byte {
	if p.exhausted() {
		return nil
	}
	b := p.buf[p.nextOffset : p.nextOffset+p.itemWidth : p.nextOffset+p.itemWidth]
	p.nextOffset = int(binary.LittleEndian.Uint64(b))
	return b
}

// Put pushes b's slot back onto the free chain in O(1). b must be a slice
// handed out by this pool; anything else panics before it can corrupt the
// chain. Double frees are not detected here, see Verify.
func (p *Pool) Put(b []byte) {
	off := bufOffset(p.buf, b)
	if off < 0 || off%p.itemWidth != 0 {
		panic("memstone: put of a buffer not owned by this pool")
	}
	binary.LittleEndian.PutUint64(p.buf[off:], uint64(p.nextOffset))
	p.nextOffset = off
}

// Verify walks the free chain looking for the cycles left behind by a
// double free or a stray write into a free slot. The walk follows at most
// slotCount links: reaching an out-of-range link within that budget means
// the chain terminates and the pool is consistent, running out of budget
// means a cycle.
//
// The walk consumes nextOffset, so the pool is unusable afterwards until
// Reset. Diagnostic use only, never mid-session.
func (p *Pool) Verify() bool {
	slotCount := len(p.buf) / p.itemWidth
	for i := 0; i < slotCount; i++ {
		if p.exhausted() {
			return true
		}
		p.nextOffset = int(binary.LittleEndian.Uint64(p.buf[p.nextOffset:]))
	}
	return p.exhausted()
}

// Close returns the backing buffer to the backing allocator. With
// WithVerifyOnClose the free chain is checked first, the pool is dying so
// the destructive walk costs nothing, and corruption is reported through
// the package logger. Close is idempotent.
func (p *Pool) Close() {
	if p.buf == nil {
		return
	}
	if p.opts.verifyOnClose && !p.Verify() {
		logger.Error("pool free chain corrupted",
			zap.Int("item-width", p.itemWidth),
			zap.Int("slot-count", len(p.buf)/p.itemWidth))
	}
	p.opts.backing.Free(p.buf)
	p.buf = nil
}

// Alloc adapts the pool to the Allocator capability, serving any request
// up to ItemWidth from a single slot. Larger requests fail.
func (p *Pool) Alloc(size int) []byte {
	if size <= 0 || size > p.itemWidth {
		return nil
	}
	b := p.Get()
	if b == nil {
		return nil
	}
	return b[:size]
}

// Realloc resizes b within its slot. Requests past the slot width fail,
// the pool has nowhere larger to move the data.
func (p *Pool) Realloc(b []byte, newSize int) []byte {
	if newSize <= 0 {
		p.Put(b)
		return nil
	}
	if newSize > p.itemWidth {
		return nil
	}
	return b[:newSize]
}

// Free returns b's slot to the free chain.
func (p *Pool) Free(b []byte) {
	p.Put(b)
}

// ItemWidth returns the fixed width of each slot in bytes.
func (p *Pool) ItemWidth() int {
	return p.itemWidth
}
