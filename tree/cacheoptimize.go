package tree

import "sync/atomic"

// IncrementalCacheOptimizeThreadSafe repositions the two children of
// nodeIndex so that (at least) child A sits at slot nodeIndex+1, restoring
// the adjacency a depth-first traversal relies on for locality. It is
// implemented as a slot swap between nodeIndex+1 and whichever node child A
// currently occupies, patching the swapped node's own two children and its
// parent's child record.
//
// Safe to call concurrently from multiple workers on disjoint index ranges.
// Calls on overlapping neighborhoods do not corrupt the tree: each
// participating slot is claimed with a compare-and-swap try-lock first, and
// a worker that loses the race simply skips this slot for the frame (the
// rotating start offset across frames means a skipped slot is revisited
// later, so nothing is permanently missed).
func (t *Tree) IncrementalCacheOptimizeThreadSafe(nodeIndex int32) {
	if nodeIndex < 0 || int(nodeIndex)+1 >= len(t.Nodes) {
		return
	}

	target := t.Nodes[nodeIndex].A.Index
	if target < 0 {
		return // child A is a leaf; there is no internal node to relocate
	}
	other := nodeIndex + 1
	if target == other {
		return // already in place
	}

	if !t.claimSlot(nodeIndex) {
		return
	}
	defer t.releaseSlot(nodeIndex)

	if !t.claimSlot(other) {
		return
	}
	defer t.releaseSlot(other)

	if !t.claimSlot(target) {
		return
	}
	defer t.releaseSlot(target)

	// Re-read child A under the claim: another worker may have already
	// performed this exact swap (or a different one affecting nodeIndex)
	// between our unguarded read above and acquiring the locks.
	target = t.Nodes[nodeIndex].A.Index
	if target < 0 || target == other {
		return
	}

	t.swapSlots(target, other)
}

func (t *Tree) claimSlot(slot int32) bool {
	return atomic.CompareAndSwapInt32(&t.Metanodes[slot].swapClaim, 0, 1)
}

func (t *Tree) releaseSlot(slot int32) {
	atomic.StoreInt32(&t.Metanodes[slot].swapClaim, 0)
}

// swapSlots exchanges the physical contents of node slots i and j (both the
// Node and its Metanode travel together, since a Metanode describes "the
// node at this index") and repoints every affected back-reference: the
// children of each relocated node, and the parent that points at it.
func (t *Tree) swapSlots(i, j int32) {
	if i == j {
		return
	}
	t.Nodes[i], t.Nodes[j] = t.Nodes[j], t.Nodes[i]
	t.Metanodes[i], t.Metanodes[j] = t.Metanodes[j], t.Metanodes[i]

	t.repointChildren(i)
	t.repointChildren(j)
	t.repointParent(i)
	t.repointParent(j)
}

func (t *Tree) repointChildren(slot int32) {
	node := &t.Nodes[slot]
	if !node.A.IsLeaf() {
		t.Metanodes[node.A.Index].Parent = slot
		t.Metanodes[node.A.Index].IndexInParent = 0
	}
	if !node.B.IsLeaf() {
		t.Metanodes[node.B.Index].Parent = slot
		t.Metanodes[node.B.Index].IndexInParent = 1
	}
}

func (t *Tree) repointParent(slot int32) {
	mn := &t.Metanodes[slot]
	if mn.Parent < 0 {
		return // root: no external parent child-record to patch
	}
	parentNode := &t.Nodes[mn.Parent]
	if mn.IndexInParent == 0 {
		parentNode.A.Index = slot
	} else {
		parentNode.B.Index = slot
	}
}
