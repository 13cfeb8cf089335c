package smallstring

import "sync"

// Pool maintains reusable Buffers of a common initial capacity to
// reduce allocations when many short-lived buffers are built and torn
// down, for example one per request or per message.
type Pool struct {
	pool     sync.Pool
	capacity int
}

// NewPool creates a pool whose buffers start at the given capacity.
func NewPool(capacity int) *Pool {
	p := &Pool{capacity: capacity}
	p.pool.New = func() any {
		return NewSize(capacity)
	}
	return p
}

// Get returns an empty buffer with at least the pool's capacity.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	if b.Capacity() < p.capacity {
		// A pooled buffer can have released its storage.
		return NewSize(p.capacity)
	}
	b.Reset()
	return b
}

// Put returns a buffer to the pool for reuse. Buffers that have shrunk
// below the pool's capacity are dropped.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.Capacity() < p.capacity {
		return
	}
	b.Reset()
	p.pool.Put(b)
}
