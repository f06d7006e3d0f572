package pass

import (
	"math"

	"github.com/katalvlaran/bvhrefit/cacheopt"
	"github.com/katalvlaran/bvhrefit/collect"
	"github.com/katalvlaran/bvhrefit/debug"
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/refine"
	"github.com/katalvlaran/bvhrefit/refit"
	"github.com/katalvlaran/bvhrefit/selector"
	"github.com/katalvlaran/bvhrefit/tree"
)

// RefitAndRefine runs one frame's worth of BVH maintenance over t:
// refit-and-mark repairs every internal AABB and measures the root's
// volatility, the target selector strides across the discovered candidates
// to pick this frame's refinement targets, refine rebuilds each target's
// treelet, and the cache optimizer sweeps a rotating slice of the node
// array back into traversal-friendly order.
//
// pool supplies the cross-frame lists every phase below builds (refit-roots,
// first-worker-candidates, candidate-list-of-lists, refinement-targets,
// cache-optimize-starts): RefitAndRefine checks each one out of pool,
// threads it through the phase that consumes it, and returns it before
// returning itself — including handing each worker's own candidate list
// back to its dispatch.BufferPool once the target selector is done reading
// it. A single pool may be reused across every frame.
//
// If t.LeafCount() <= 2, RefitAndRefine is a no-op: a tree with one
// internal node has no parent to form a cost metric against.
func RefitAndRefine(t *tree.Tree, pool *dispatch.MainPool, d dispatch.Dispatcher, frameIndex int64, opts ...Option) error {
	if t.LeafCount() <= 2 {
		return nil
	}

	debug.AssertCleanStart(t)

	cfg := newConfig(opts...)
	workerCount := d.ThreadCount()

	collected := collect.Collect(t, workerCount, cfg.refinementLeafCountThreshold, pool)

	refitResult, err := refit.Run(t, d, collected.RefitRoots, collected.FirstWorkerCandidates, cfg.refinementLeafCountThreshold, pool)
	pool.PutRefitRoots(collected.RefitRoots)
	pool.PutFirstWorkerCandidates(collected.FirstWorkerCandidates)
	if err != nil {
		return err
	}

	targets := selector.Select(t, refitResult.CandidateLists, frameIndex, cfg.refineAggressivenessScale, refitResult.RefitCostChange, pool)
	debug.NoDuplicateTargets(targets)

	for i, candidates := range refitResult.CandidateLists {
		d.MemoryPool(i).Put(candidates)
	}
	pool.PutCandidateListOfLists(refitResult.CandidateLists)

	refineErr := refine.Run(t, d, targets, cfg.maximumSubtrees)
	pool.PutRefinementTargets(targets)
	if refineErr != nil {
		return refineErr
	}

	scale := math.Max(1, 0.25*float64(workerCount)) * cfg.cacheOptimizeAggressivenessScale
	cacheOptimizeCount := cacheopt.GetCacheOptimizeTuning(cfg.maximumSubtrees, refitResult.RefitCostChange, scale, t.NodeCount())

	return cacheopt.Run(t, d, frameIndex, cacheOptimizeCount, pool)
}
