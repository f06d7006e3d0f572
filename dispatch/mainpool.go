package dispatch

// MainPool recycles the cross-frame lists RefitAndRefine's host-side
// coordination needs: the collector's refit-roots and first-worker
// candidates, the refit fan-in's candidate-list-of-lists, the target
// selector's refinement-targets, and the cache optimizer's rotating task
// starts. Unlike a per-worker BufferPool, a MainPool is owned by the
// calling goroutine across an entire RefitAndRefine call — callers Get a
// list at the start of the phase that builds it and Put it back once the
// phase that consumes it is done reading.
//
// A single MainPool may be reused across many frames and shared by every
// call into the same dispatch.Dispatcher; it holds no per-call state of its
// own beyond the recycled backing arrays.
type MainPool struct {
	refitRoots            *TypedPool[int32]
	firstWorkerCandidates *TypedPool[int32]
	candidateListOfLists  *TypedPool[[]int32]
	refinementTargets     *TypedPool[int32]
	cacheOptimizeStarts   *TypedPool[int32]
}

// NewMainPool returns a MainPool with fresh, empty backing pools.
func NewMainPool() *MainPool {
	return &MainPool{
		refitRoots:            NewTypedPool[int32](typedPoolInitialCapacity),
		firstWorkerCandidates: NewTypedPool[int32](typedPoolInitialCapacity),
		candidateListOfLists:  NewTypedPool[[]int32](typedPoolInitialCapacity),
		refinementTargets:     NewTypedPool[int32](typedPoolInitialCapacity),
		cacheOptimizeStarts:   NewTypedPool[int32](typedPoolInitialCapacity),
	}
}

// GetRefitRoots returns a recycled or fresh buffer for the collector's
// refit-roots list.
func (p *MainPool) GetRefitRoots() []int32 { return p.refitRoots.Get() }

// PutRefitRoots returns a refit-roots buffer once refit.Run is done reading
// it.
func (p *MainPool) PutRefitRoots(buf []int32) { p.refitRoots.Put(buf) }

// GetFirstWorkerCandidates returns a recycled or fresh buffer for the
// collector's first-worker-candidates list.
func (p *MainPool) GetFirstWorkerCandidates() []int32 { return p.firstWorkerCandidates.Get() }

// PutFirstWorkerCandidates returns a first-worker-candidates buffer once
// refit.Run is done reading it.
func (p *MainPool) PutFirstWorkerCandidates(buf []int32) { p.firstWorkerCandidates.Put(buf) }

// GetCandidateListOfLists returns a recycled or fresh [][]int32 for refit's
// per-worker candidate lists.
func (p *MainPool) GetCandidateListOfLists() [][]int32 { return p.candidateListOfLists.Get() }

// PutCandidateListOfLists returns the candidate-list-of-lists buffer once
// the target selector is done flattening it. The inner, per-worker slices
// belong to their worker's dispatch.BufferPool, not this pool, and must be
// returned there separately.
func (p *MainPool) PutCandidateListOfLists(buf [][]int32) { p.candidateListOfLists.Put(buf) }

// GetRefinementTargets returns a recycled or fresh buffer for the target
// selector's refinement-targets list.
func (p *MainPool) GetRefinementTargets() []int32 { return p.refinementTargets.Get() }

// PutRefinementTargets returns a refinement-targets buffer once refine.Run
// is done reading it.
func (p *MainPool) PutRefinementTargets(buf []int32) { p.refinementTargets.Put(buf) }

// GetCacheOptimizeStarts returns a recycled or fresh buffer for the cache
// optimizer's rotating per-task start offsets.
func (p *MainPool) GetCacheOptimizeStarts() []int32 { return p.cacheOptimizeStarts.Get() }

// PutCacheOptimizeStarts returns a cache-optimize-starts buffer once the
// cache-optimize dispatch that consumed it has returned.
func (p *MainPool) PutCacheOptimizeStarts(buf []int32) { p.cacheOptimizeStarts.Put(buf) }
