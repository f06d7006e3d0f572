package dispatch

import "sync"

// typedPoolInitialCapacity is the initial capacity handed out for a fresh
// scratch slice from a TypedPool, mirroring defaultBufferCapacity's role for
// BufferPool.
const typedPoolInitialCapacity = 16

// TypedPool recycles []T slices via sync.Pool, generalizing BufferPool
// beyond its fixed []int32 shape. It backs MainPool's cross-frame lists:
// refit-roots, refinement-targets, cache-optimize-starts, and the
// candidate-list-of-lists, none of which are owned by a single worker the
// way a thread-local BufferPool is.
type TypedPool[T any] struct {
	pool sync.Pool
}

// NewTypedPool returns a TypedPool whose fresh allocations start at
// initialCapacity.
func NewTypedPool[T any](initialCapacity int) *TypedPool[T] {
	return &TypedPool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return make([]T, 0, initialCapacity)
			},
		},
	}
}

// Get returns a zero-length []T with spare capacity, either recycled from a
// prior Put or freshly allocated.
func (p *TypedPool[T]) Get() []T {
	buf, _ := p.pool.Get().([]T)
	return buf[:0]
}

// Put returns buf to the pool for reuse. Callers must not touch buf after
// calling Put.
func (p *TypedPool[T]) Put(buf []T) {
	p.pool.Put(buf) //nolint:staticcheck // sync.Pool.Put intentionally takes interface{}
}
