package memstone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdAlloc(t *testing.T) {
	assert.Equal(t, 10, len(Std.Alloc(10)))
	assert.Nil(t, Std.Alloc(0))
	assert.Nil(t, Std.Alloc(-1))
}

func TestStdRealloc(t *testing.T) {
	b := Std.Alloc(4)
	copy(b, "abcd")

	b = Std.Realloc(b, 8)
	assert.Equal(t, 8, len(b))
	assert.Equal(t, []byte("abcd"), b[:4])

	assert.Nil(t, Std.Realloc(b, 0))
	assert.Equal(t, 8, len(Std.Realloc(nil, 8)))
}

func TestMmapRoundTrip(t *testing.T) {
	b := Mmap.Alloc(4096)
	assert.NotNil(t, b)
	assert.Equal(t, 4096, len(b))

	b[0] = 1
	b[4095] = 2
	b = Mmap.Realloc(b, 8192)
	assert.NotNil(t, b)
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, byte(2), b[4095])
	Mmap.Free(b)

	assert.Nil(t, Mmap.Alloc(0))
}
