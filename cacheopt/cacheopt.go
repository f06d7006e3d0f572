package cacheopt

import (
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/tree"
)

// Run computes the per-task start offsets for this frame and dispatches
// one worker per pair of tasks, each scanning its contiguous, clipped slot
// range and calling tree.IncrementalCacheOptimizeThreadSafe at every slot.
//
// frameIndex rotates the first start index across frames so that repeated
// calls sweep the whole node array rather than only ever touching its
// first cacheOptimizeCount slots.
//
// pool supplies the per-task start-offset backing array; Run is the only
// reader, so it checks the buffer out and back in within the same call.
func Run(t *tree.Tree, d dispatch.Dispatcher, frameIndex int64, cacheOptimizeCount int, pool *dispatch.MainPool) error {
	nodeCount := t.NodeCount()
	if nodeCount == 0 || cacheOptimizeCount <= 0 {
		return nil
	}

	workerCount := d.ThreadCount()
	taskCount := 2 * workerCount
	perTask := cacheOptimizeCount / taskCount
	if perTask < 1 {
		perTask = 1
	}

	starts := taskStarts(pool.GetCacheOptimizeStarts(), nodeCount, workerCount, taskCount, frameIndex, perTask)
	defer pool.PutCacheOptimizeStarts(starts)

	return d.Dispatch(func(workerIndex int) error {
		for _, task := range []int{2 * workerIndex, 2*workerIndex + 1} {
			if task >= len(starts) {
				continue
			}
			scanRange(t, starts[task], perTask, nodeCount)
		}
		return nil
	})
}

// taskStarts computes the rotating start index for each of taskCount tasks:
// the first is (frameIndex * perTask) mod nodeCount; each subsequent start
// is spaced from the previous by nodeCount/workerCount slots, with a +1
// bump applied to the first (nodeCount mod workerCount) gaps, wrapping
// modulo nodeCount throughout. buf supplies the backing array, appended to
// from empty.
func taskStarts(buf []int32, nodeCount, workerCount, taskCount int, frameIndex int64, perTask int) []int32 {
	stride := nodeCount / workerCount
	remainder := nodeCount % workerCount

	starts := buf[:0]
	cur := int64(frameIndex) * int64(perTask) % int64(nodeCount)
	if cur < 0 {
		cur += int64(nodeCount)
	}
	starts = append(starts, int32(cur))

	for i := 1; i < taskCount; i++ {
		gap := stride
		if i-1 < remainder {
			gap++
		}
		cur = (cur + int64(gap)) % int64(nodeCount)
		starts = append(starts, int32(cur))
	}

	return starts
}

// scanRange calls IncrementalCacheOptimizeThreadSafe once per slot in
// [start, start+count), clipped at nodeCount with no wraparound within a
// single worker's range.
func scanRange(t *tree.Tree, start int32, count int, nodeCount int) {
	end := int(start) + count
	if end > nodeCount {
		end = nodeCount
	}
	for slot := int(start); slot < end; slot++ {
		t.IncrementalCacheOptimizeThreadSafe(int32(slot))
	}
}
