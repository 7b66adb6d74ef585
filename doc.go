// Package memstone provides a small family of allocators behind a single
// capability interface: a system-backed allocator, a linear arena and a
// fixed-slot pool.
//
// Code that needs memory takes an Allocator value and never a concrete
// variant; the owner of the memory decides the strategy. Exhaustion is
// signaled by a nil slice and is always recoverable. The Arena and Pool
// variants are not goroutine-safe, see SyncAllocator.
package memstone
