package collect

import (
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/tree"
)

// EncodeRefitRoot sign-encodes a node index for the refit-roots list:
// encode(i) = -1-i. Reversible via DecodeRefitRoot. Used to multiplex "this
// refit-root was already classified as a wavefront node, use
// RefitAndMeasure" into the same flat []int32 list as ordinary (mark-mode)
// refit-roots, without a second parallel slice or a tagged struct — chosen
// in DESIGN.md because it keeps the refit-roots list a single flat []int32,
// matching the "no allocations in the hot loop" resource model.
func EncodeRefitRoot(nodeIndex int32) int32 {
	return -1 - nodeIndex
}

// DecodeRefitRoot reverses EncodeRefitRoot: decode(encode(i)) == i for any
// i >= 0, and zero round-trips correctly since encode(0) == -1 != 0.
func DecodeRefitRoot(encoded int32) int32 {
	return -1 - encoded
}

// MultithreadingLeafCountThreshold computes the cutoff above which the
// collector keeps descending instead of stopping at a refit-root:
// max(totalLeafCount/(2*workerCount), refinementLeafCountThreshold); a
// two-leaf node is a refit-root regardless of the threshold. On a
// balanced tree this yields roughly 2*workerCount refit-roots — enough work
// items to load-balance via the atomic claim counter, while keeping each
// refit-root's subtree large enough to amortize dispatch cost.
func MultithreadingLeafCountThreshold(totalLeafCount, workerCount int, refinementLeafCountThreshold int32) int32 {
	if workerCount < 1 {
		workerCount = 1
	}
	byWorkerShare := int32(totalLeafCount / (2 * workerCount))
	if byWorkerShare > refinementLeafCountThreshold {
		return byWorkerShare
	}
	return refinementLeafCountThreshold
}

// Result holds the two lists the wavefront collector produces.
type Result struct {
	// RefitRoots holds one entry per refit-root: the node index, sign-encoded
	// via EncodeRefitRoot when the refit-root was already identified as a
	// wavefront node (leafCount <= refinementLeafCountThreshold) and should
	// therefore be refit with RefitAndMeasure rather than RefitAndMark.
	RefitRoots []int32

	// FirstWorkerCandidates holds the refit-roots that were themselves
	// classified as wavefront nodes: they belong in worker 0's candidate
	// list before dispatch even starts.
	FirstWorkerCandidates []int32
}

// Collect partitions t into refit-roots for workerCount workers, using
// refinementLeafCountThreshold as the wavefront cutoff. It runs entirely on
// the calling goroutine, single-threaded, before dispatch, and sets the
// Metanode.RefineFlag of every internal node above the refit-roots to
// the count of that node's internal children lying on the path to some
// refit-root — the fan-in barrier refit-and-mark workers decrement.
//
// Callers must not invoke Collect on a tree with LeafCount() <= 2; the pass
// package enforces that no-op precondition before calling in.
//
// pool supplies the backing arrays for both result lists; the caller
// returns them to pool once refit.Run is done reading Result.
func Collect(t *tree.Tree, workerCount int, refinementLeafCountThreshold int32, pool *dispatch.MainPool) Result {
	threshold := MultithreadingLeafCountThreshold(t.LeafCount(), workerCount, refinementLeafCountThreshold)

	c := &collector{
		tree:                         t,
		multithreadingThreshold:      threshold,
		refinementLeafCountThreshold: refinementLeafCountThreshold,
		refitRoots:                   pool.GetRefitRoots(),
		firstWorkerCandidates:        pool.GetFirstWorkerCandidates(),
	}
	c.walk(t.Root())

	return Result{RefitRoots: c.refitRoots, FirstWorkerCandidates: c.firstWorkerCandidates}
}

type collector struct {
	tree                         *tree.Tree
	multithreadingThreshold      int32
	refinementLeafCountThreshold int32

	refitRoots            []int32
	firstWorkerCandidates []int32
}

// walk visits the internal node at nodeIndex, classifying each of its two
// children and recursing into any child that isn't yet a refit-root.
func (c *collector) walk(nodeIndex int32) {
	node := &c.tree.Nodes[nodeIndex]
	internalChildren := int32(0)

	for side := 0; side < 2; side++ {
		var child *tree.ChildRecord
		if side == 0 {
			child = &node.A
		} else {
			child = &node.B
		}
		if child.IsLeaf() {
			continue
		}
		internalChildren++

		// A two-leaf node has no internal child to descend to, so it is always
		// a refit-root even when the threshold is below 2.
		if child.LeafCount > c.multithreadingThreshold && child.LeafCount > 2 {
			c.walk(child.Index)
			continue
		}

		// child is a refit-root.
		if child.LeafCount <= c.refinementLeafCountThreshold {
			c.firstWorkerCandidates = append(c.firstWorkerCandidates, child.Index)
			c.refitRoots = append(c.refitRoots, EncodeRefitRoot(child.Index))
		} else {
			c.refitRoots = append(c.refitRoots, child.Index)
		}
	}

	c.tree.Metanodes[nodeIndex].RefineFlag = internalChildren
}
