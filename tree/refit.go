package tree

import "github.com/katalvlaran/bvhrefit/geom"

// RefitAndMark recursively repairs the subtree rooted at child.Index,
// replacing each visited internal node's stored child AABBs with the union
// of its grandchildren, and returns the sum of post-minus-pre bounds-metric
// deltas.
//
// While descending, any internal node whose LeafCount is at or below
// leafThreshold is appended to candidates and its subtree is refit without
// further marking (it switches to RefitAndMeasure): this is how new
// wavefront nodes nested below the caller's refit-root are discovered during
// the bottom-up walk itself, rather than only during collection.
//
// child must describe an internal node (child.IsLeaf() == false); callers
// decode the sign-encoded refit-roots list before invoking this.
func (t *Tree) RefitAndMark(child *ChildRecord, leafThreshold int32, candidates *[]int32) float64 {
	return t.refit(child, leafThreshold, candidates, true)
}

// RefitAndMeasure is identical to RefitAndMark but never appends candidates:
// used both below a discovered wavefront node, and directly for refit-roots
// the collector already classified as wavefronts (sign-encoded negative).
func (t *Tree) RefitAndMeasure(child *ChildRecord) float64 {
	return t.refit(child, 0, nil, false)
}

// refit walks down from child (an internal node reference), recomputes its
// two children, and unions them back into child itself.
func (t *Tree) refit(child *ChildRecord, leafThreshold int32, candidates *[]int32, marking bool) float64 {
	node := &t.Nodes[child.Index]

	costA := t.refitChild(&node.A, leafThreshold, candidates, marking)
	costB := t.refitChild(&node.B, leafThreshold, candidates, marking)

	pre := child.BoundsMetric()
	child.SetAABB(geom.Union(node.A.AABB(), node.B.AABB()))
	post := child.BoundsMetric()

	return costA + costB + (post - pre)
}

// refitChild handles one child of an internal node being refit: leaves are
// already accurate (the broadphase updated them) and contribute no cost
// change; internal children either continue marking or, if they're at or
// below leafThreshold, get appended as a new candidate and recurse in
// measure-only mode.
func (t *Tree) refitChild(child *ChildRecord, leafThreshold int32, candidates *[]int32, marking bool) float64 {
	if child.IsLeaf() {
		return 0
	}
	if marking && child.LeafCount <= leafThreshold {
		if candidates != nil {
			*candidates = append(*candidates, child.Index)
		}
		return t.refit(child, leafThreshold, candidates, false)
	}
	return t.refit(child, leafThreshold, candidates, marking)
}
