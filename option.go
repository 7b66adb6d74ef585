package memstone

// Option configures an Arena or a Pool.
type Option func(*options)

type options struct {
	backing       Allocator
	verifyOnClose bool
}

func (opts *options) adjust() {
	if opts.backing == nil {
		opts.backing = Std
	}
}

// WithBackingAllocator set the allocator the arena or pool acquires its
// backing buffer from. The buffer is returned to it on Close. Defaults
// to Std.
func WithBackingAllocator(alloc Allocator) Option {
	return func(opts *options) {
		opts.backing = alloc
	}
}

// WithVerifyOnClose check the pool's free chain when the pool is closed
// and report corruption through the package logger. Pool only. The check
// is destructive, so it never runs anywhere but teardown.
func WithVerifyOnClose() Option {
	return func(opts *options) {
		opts.verifyOnClose = true
	}
}
