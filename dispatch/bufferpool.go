package dispatch

import "sync"

// defaultBufferCapacity is the initial capacity handed out for a fresh
// []int32 scratch buffer — enough for a typical candidate list without an
// immediate grow-reallocate on first use.
const defaultBufferCapacity = 16

// BufferPool allocates and recycles the []int32 per-worker candidate lists
// the pass needs during refit-and-mark; refine's treelet scratch comes from
// tree.ScratchPool instead. It wraps
// sync.Pool, the idiomatic stdlib answer for "allocate on demand, return
// for reuse".
//
// A BufferPool is owned by exactly one worker at a time: thread pools are
// used only by their owning worker. It is not safe to share a single
// *BufferPool across goroutines without that discipline, even though
// sync.Pool itself tolerates concurrent use — callers must still not mix
// Get/Put across workers, or the per-worker, lock-free property of the
// candidate lists no longer holds.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool returns a BufferPool whose fresh allocations start at
// defaultBufferCapacity.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make([]int32, 0, defaultBufferCapacity)
			},
		},
	}
}

// Get returns a zero-length []int32 with spare capacity, either recycled
// from a prior Put or freshly allocated.
func (p *BufferPool) Get() []int32 {
	buf, _ := p.pool.Get().([]int32)
	return buf[:0]
}

// Put returns buf to the pool for reuse. Callers must not touch buf after
// calling Put.
func (p *BufferPool) Put(buf []int32) {
	p.pool.Put(buf) //nolint:staticcheck // sync.Pool.Put intentionally takes interface{}
}
