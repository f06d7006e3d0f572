package selector

import (
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/tree"
)

// Select runs the target selector: it sums the per-worker candidate-list
// lengths, asks GetRefineTuning for (targetCount, period, offset), strides
// across the concatenated candidate-list ring picking targetCount-1
// distinct node indices, sets each chosen node's RefineFlag to 1 (reused
// here as the "is refinement target" boolean), and finally appends the
// root if the stride didn't already pick it.
//
// candidateLists is refit.Result.CandidateLists, unmodified. t's RefineFlag
// values must all be 0 on entry (the refit-and-mark fan-in barrier clears
// them as it goes); Select leaves every chosen target's flag at 1 for
// refine's dispatch to find and clear afterward.
//
// pool supplies the refinement-targets backing array; the caller returns it
// once refine.Run is done reading the result.
func Select(t *tree.Tree, candidateLists [][]int32, frameIndex int64, aggressivenessScale float64, refitCostChange float64, pool *dispatch.MainPool) []int32 {
	ring := flatten(candidateLists)
	root := t.Root()

	targets := pool.GetRefinementTargets()

	targetCount, period, offset := GetRefineTuning(frameIndex, len(ring), aggressivenessScale, refitCostChange)
	if targetCount == 0 {
		return appendRootIfMissing(t, targets, root)
	}

	want := targetCount - 1

	pos := offset
	for picked := 0; picked < want && picked < len(ring); picked++ {
		// Advance until we land on a node not already claimed this frame —
		// the stride/period relationship from GetRefineTuning keeps this a
		// bounded walk in the overwhelming common case; the ring-length cap
		// below guarantees termination regardless.
		steps := int64(0)
		for steps < int64(len(ring)) {
			nodeIndex := ring[pos]
			if t.Metanodes[nodeIndex].RefineFlag == 0 {
				t.Metanodes[nodeIndex].RefineFlag = 1
				targets = append(targets, nodeIndex)
				break
			}
			pos = (pos + 1) % int64(len(ring))
			steps++
		}
		pos = (pos + int64(period)) % int64(len(ring))
	}

	return appendRootIfMissing(t, targets, root)
}

// appendRootIfMissing adds root to targets (and sets its RefineFlag) unless
// it is already present: the root is refined iff the stride did not
// already choose it.
func appendRootIfMissing(t *tree.Tree, targets []int32, root int32) []int32 {
	if root < 0 {
		return targets
	}
	if t.Metanodes[root].RefineFlag == 1 {
		return targets
	}
	t.Metanodes[root].RefineFlag = 1
	return append(targets, root)
}

// flatten concatenates candidateLists into a single ring, preserving
// worker-0-first, in-list order — the ordering the stride walk assumes.
func flatten(candidateLists [][]int32) []int32 {
	total := 0
	for _, l := range candidateLists {
		total += len(l)
	}
	ring := make([]int32, 0, total)
	for _, l := range candidateLists {
		ring = append(ring, l...)
	}
	return ring
}
