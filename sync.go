package memstone

import "sync"

var _ Allocator = (*SyncAllocator)(nil)

// SyncAllocator serializes access to a wrapped Allocator, making
// single-owner variants like Arena and Pool shareable across goroutines.
// Std and Mmap do not need it.
type SyncAllocator struct {
	mu    sync.Mutex
	alloc Allocator
}

// NewSyncAllocator wraps alloc with a mutex.
func NewSyncAllocator(alloc Allocator) *SyncAllocator {
	return &SyncAllocator{alloc: alloc}
}

func (s *SyncAllocator) Alloc(size int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alloc.Alloc(size)
}

func (s *SyncAllocator) Realloc(b []byte, newSize int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alloc.Realloc(b, newSize)
}

func (s *SyncAllocator) Free(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alloc.Free(b)
}
