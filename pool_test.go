package memstone

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolScenario(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	slots := make([][]byte, 0, 4)
	for i := 0; i < 4; i++ {
		b := p.Get()
		assert.NotNil(t, b)
		assert.Equal(t, 16, len(b))
		for j := range b {
			b[j] = byte(i + 1)
		}
		slots = append(slots, b)
	}
	assert.Nil(t, p.Get())

	// distinct, non-overlapping: every slot still holds its own pattern
	for i, b := range slots {
		assert.Equal(t, bytes.Repeat([]byte{byte(i + 1)}, 16), []byte(b))
	}

	for _, i := range []int{2, 0, 3, 1} {
		p.Put(slots[i])
	}
	assert.True(t, p.Verify())
}

func TestPoolExhaustAndReuse(t *testing.T) {
	p := NewPool(16, 2)
	defer p.Close()

	b1 := p.Get()
	b2 := p.Get()
	assert.NotNil(t, b1)
	assert.NotNil(t, b2)
	assert.Nil(t, p.Get())

	p.Put(b1)
	b3 := p.Get()
	assert.True(t, &b3[0] == &b1[0])
	assert.Nil(t, p.Get())
}

func TestPoolVerifyFresh(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	assert.True(t, p.Verify())
}

func TestPoolVerifyPartial(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	p.Get()
	p.Get()
	assert.True(t, p.Verify())
}

func TestPoolDoubleFree(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	b := p.Get()
	p.Put(b)
	p.Put(b)
	// the chain now cycles; the walk must detect it instead of hanging
	assert.False(t, p.Verify())
}

func TestPoolPutForeign(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	assert.Panics(t, func() { p.Put(make([]byte, 16)) })
	assert.Panics(t, func() { p.Put(nil) })
}

func TestNewPoolPanics(t *testing.T) {
	assert.Panics(t, func() { NewPool(4, 8) })
	assert.Panics(t, func() { NewPool(16, 0) })
}

func TestPoolReset(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	for p.Get() != nil {
	}
	p.Reset()
	for i := 0; i < 4; i++ {
		assert.NotNil(t, p.Get())
	}
	assert.Nil(t, p.Get())
}

func TestPoolAllocatorAdapter(t *testing.T) {
	p := NewPool(16, 4)
	defer p.Close()

	var alloc Allocator = p
	b := alloc.Alloc(10)
	assert.Equal(t, 10, len(b))
	assert.Nil(t, alloc.Alloc(17))
	assert.Nil(t, alloc.Alloc(0))

	b = alloc.Realloc(b, 16)
	assert.Equal(t, 16, len(b))
	assert.Nil(t, alloc.Realloc(b, 17))

	alloc.Free(b)
	assert.True(t, p.Verify())
}

func TestPoolVerifyOnClose(t *testing.T) {
	p := NewPool(16, 4, WithVerifyOnClose())
	b := p.Get()
	p.Put(b)
	p.Put(b)
	// corruption is reported through the package logger, never a panic
	p.Close()
	p.Close()
}

func TestPoolMetrics(t *testing.T) {
	p := NewPool(32, 8)
	defer p.Close()

	m := p.Metrics()
	assert.Equal(t, 256, m.Capacity)
	assert.Equal(t, 32, m.ItemWidth)
	assert.Equal(t, 8, m.SlotCount)
	assert.Equal(t, 32, p.ItemWidth())
}

func TestPoolMmapBacking(t *testing.T) {
	p := NewPool(64, 1024, WithBackingAllocator(Mmap))
	defer p.Close()

	b := p.Get()
	assert.NotNil(t, b)
	assert.Equal(t, 64, len(b))
}
