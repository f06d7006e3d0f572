// Package dispatch provides the injected worker-dispatcher and buffer-pool
// capabilities the pass package coordinates. Neither is a global: Dispatcher
// is a plain interface so the engine stays testable with a single-threaded
// deterministic dispatcher, and a host can supply its own thread pool
// instead. BufferPool is a concrete sync.Pool-backed type that every
// Dispatcher hands out per worker.
//
// ErrgroupDispatcher, the default concurrent implementation, is built on
// golang.org/x/sync/errgroup: errgroup.Group's Go/Wait pair is exactly the
// "run N workers, join before returning" contract a dispatch call needs.
package dispatch
