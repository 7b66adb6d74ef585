package memstone

// ArenaMetrics is a snapshot of arena usage. SizeInUse includes internal
// fragmentation from alignment rounding.
type ArenaMetrics struct {
	SizeInUse int
	Capacity  int
	Available int
}

// Metrics returns a snapshot of the arena's usage.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse: a.head,
		Capacity:  len(a.buf),
		Available: len(a.buf) - a.head,
	}
}

// PoolMetrics is a snapshot of a pool's shape. There is no live free-slot
// count: tracking one would put bookkeeping on the Get/Put hot path.
type PoolMetrics struct {
	Capacity  int
	ItemWidth int
	SlotCount int
}

// Metrics returns a snapshot of the pool's shape.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		Capacity:  len(p.buf),
		ItemWidth: p.itemWidth,
		SlotCount: len(p.buf) / p.itemWidth,
	}
}
