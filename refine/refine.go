package refine

import (
	"sync/atomic"

	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/tree"
)

// Run dispatches the refine phase over targets (as produced by
// selector.Select) across d's workers. Each worker draws one
// *tree.RefineScratch from a tree.ScratchPool sized for this call's
// maximumSubtrees, holds it for the lifetime of its claim loop, and returns
// it the moment the loop ends — so the scratch a worker's BinnedRefine calls
// reuse across every target it claims is checked out exactly once, and no
// allocation happens inside the claim loop itself. Once every worker has
// returned, Run clears every target's RefineFlag on the calling goroutine —
// deferred until now so that refine's internal ordering never leaks into
// flag state.
func Run(t *tree.Tree, d dispatch.Dispatcher, targets []int32, maximumSubtrees int) error {
	var cursor int32
	scratchPool := tree.NewScratchPool(maximumSubtrees)

	err := d.Dispatch(func(workerIndex int) error {
		scratch := scratchPool.Get()
		defer scratchPool.Put(scratch)

		for {
			claimed := atomic.AddInt32(&cursor, 1) - 1
			if int(claimed) >= len(targets) {
				return nil
			}
			t.BinnedRefine(targets[claimed], maximumSubtrees, scratch)
		}
	})
	if err != nil {
		return err
	}

	for _, target := range targets {
		t.Metanodes[target].RefineFlag = 0
	}
	return nil
}
