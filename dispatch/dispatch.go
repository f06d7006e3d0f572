package dispatch

import "errors"

// ErrWorkerFailed is returned by Dispatch when at least one worker action
// returned a non-nil error. An allocation failure inside a worker (e.g. a
// candidate-list resize) aborts the dispatch; the tree is left with dirty
// RefineFlag values and the caller must run tree.ScrubRefineFlags before
// the next frame's pass.
var ErrWorkerFailed = errors.New("dispatch: one or more workers failed")

// WorkerAction is the unit of work a Dispatcher runs once per worker index,
// 0..threadCount-1. It returns an error only for an unrecoverable failure
// such as an allocation failure; ordinary per-worker "no more work"
// termination is the worker's own loop condition, not an error.
type WorkerAction func(workerIndex int) error

// Dispatcher runs a WorkerAction on threadCount workers in parallel and
// returns once every worker has completed. Across two calls to Dispatch
// there is a happens-before barrier: the second call's workers observe
// every write the first call's workers made.
type Dispatcher interface {
	// Dispatch runs action once per worker, 0..ThreadCount()-1, and blocks
	// until all of them return.
	Dispatch(action WorkerAction) error

	// ThreadCount reports how many workers Dispatch will run.
	ThreadCount() int

	// MemoryPool returns the thread-local BufferPool for workerIndex. Valid
	// for 0 <= workerIndex < ThreadCount().
	MemoryPool(workerIndex int) *BufferPool
}
