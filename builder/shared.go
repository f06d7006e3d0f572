package builder

import (
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
)

// node is the scratch binary tree every constructor builds before writing it
// into a *tree.Tree's flat arrays. isLeaf means this node is one of the
// original input leaves, and leafIndex is its position in the input.
type node struct {
	leafIndex int32 // valid iff isLeaf
	isLeaf    bool
	bounds    geom.AABB
	left      *node
	right     *node
	leafCount int32
}

// toTree writes root (and its whole subtree) into fresh Node/Metanode
// arrays in pre-order and wraps them into a *tree.Tree. leafCount is the
// total number of leaves passed to the constructor.
func toTree(root *node, leafCount int) (*tree.Tree, error) {
	if root == nil {
		t, err := tree.New(nil, nil, leafCount)
		return t, err
	}
	if root.isLeaf {
		// A single leaf has no internal node at all.
		t, err := tree.New(nil, nil, leafCount)
		return t, err
	}

	w := &writer{
		nodes:     make([]tree.Node, 0, leafCount-1),
		metanodes: make([]tree.Metanode, 0, leafCount-1),
	}
	w.write(root, -1, 0)

	return tree.New(w.nodes, w.metanodes, leafCount)
}

type writer struct {
	nodes     []tree.Node
	metanodes []tree.Metanode
}

// write allocates a slot for n (pre-order) and recurses, returning the
// ChildRecord describing n as seen from its parent.
func (w *writer) write(n *node, parent int32, indexInParent int8) tree.ChildRecord {
	if n.isLeaf {
		return tree.LeafChildRecord(n.leafIndex, n.bounds)
	}

	slot := int32(len(w.nodes))
	w.nodes = append(w.nodes, tree.Node{})
	w.metanodes = append(w.metanodes, tree.Metanode{Parent: parent, IndexInParent: indexInParent})

	leftRec := w.write(n.left, slot, 0)
	rightRec := w.write(n.right, slot, 1)
	w.nodes[slot] = tree.Node{A: leftRec, B: rightRec}

	return tree.ChildRecord{Min: n.bounds.Min, Max: n.bounds.Max, Index: slot, LeafCount: n.leafCount}
}

// leafNodes wraps each input AABB as a leaf scratch node, indices 0..n-1.
func leafNodes(leaves []geom.AABB) []*node {
	out := make([]*node, len(leaves))
	for i, box := range leaves {
		out[i] = &node{leafIndex: int32(i), isLeaf: true, bounds: box, leafCount: 1}
	}
	return out
}

// pair merges two scratch nodes into one internal scratch node.
func pair(a, b *node) *node {
	return &node{
		left:      a,
		right:     b,
		bounds:    geom.Union(a.bounds, b.bounds),
		leafCount: a.leafCount + b.leafCount,
	}
}
