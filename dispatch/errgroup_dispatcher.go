package dispatch

import "golang.org/x/sync/errgroup"

// ErrgroupDispatcher runs each of the three per-frame parallel phases as an
// errgroup.Group of ThreadCount goroutines, one per worker index, joined by
// Wait before Dispatch returns — the real concurrent dispatcher a host
// wires in for production use.
type ErrgroupDispatcher struct {
	threadCount int
	pools       []*BufferPool
}

// NewErrgroupDispatcher returns a dispatcher with threadCount workers, each
// given its own BufferPool. threadCount must be at least 1.
func NewErrgroupDispatcher(threadCount int) *ErrgroupDispatcher {
	if threadCount < 1 {
		threadCount = 1
	}
	pools := make([]*BufferPool, threadCount)
	for i := range pools {
		pools[i] = NewBufferPool()
	}
	return &ErrgroupDispatcher{threadCount: threadCount, pools: pools}
}

// ThreadCount implements Dispatcher.
func (d *ErrgroupDispatcher) ThreadCount() int {
	return d.threadCount
}

// MemoryPool implements Dispatcher.
func (d *ErrgroupDispatcher) MemoryPool(workerIndex int) *BufferPool {
	return d.pools[workerIndex]
}

// Dispatch implements Dispatcher by running action on an errgroup.Group of
// d.threadCount goroutines and waiting for all of them to finish. If any
// worker returns a non-nil error, Dispatch returns ErrWorkerFailed (the
// worker's own error is not wrapped); every other worker still runs to
// completion (errgroup cancels a context
// only if one was supplied, and Dispatch supplies none — workers here do no
// blocking I/O to cancel).
func (d *ErrgroupDispatcher) Dispatch(action WorkerAction) error {
	var g errgroup.Group
	for w := 0; w < d.threadCount; w++ {
		workerIndex := w
		g.Go(func() error {
			return action(workerIndex)
		})
	}
	if err := g.Wait(); err != nil {
		return ErrWorkerFailed
	}
	return nil
}
