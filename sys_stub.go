//go:build !linux
// +build !linux

package memstone

// Mmap degrades to the process heap on platforms without the mapping
// syscalls wired up.
var Mmap Allocator = stdAllocator{}
