package tree

import (
	"errors"

	"github.com/katalvlaran/bvhrefit/geom"
)

// Sentinel errors for tree construction and lookup.
var (
	// ErrMismatchedArrays indicates Nodes and Metanodes have different lengths.
	ErrMismatchedArrays = errors.New("tree: nodes and metanodes length mismatch")

	// ErrInvalidLeafCount indicates a negative leaf count was supplied.
	ErrInvalidLeafCount = errors.New("tree: leaf count must be non-negative")
)

// ChildRecord is one of a Node's two children: its bounding box, the signed
// index of the child (negative encodes a leaf id: id = -(index+1)), and the
// number of leaves in that child's subtree.
type ChildRecord struct {
	Min       geom.Vector3
	Max       geom.Vector3
	Index     int32
	LeafCount int32
}

// AABB returns the child's bounding box as a geom.AABB value.
func (c ChildRecord) AABB() geom.AABB {
	return geom.AABB{Min: c.Min, Max: c.Max}
}

// SetAABB writes box into the child's Min/Max fields.
func (c *ChildRecord) SetAABB(box geom.AABB) {
	c.Min = box.Min
	c.Max = box.Max
}

// BoundsMetric returns the surface area of the child's bounding box.
func (c ChildRecord) BoundsMetric() float64 {
	return c.AABB().BoundsMetric()
}

// IsLeaf reports whether this child record points at a leaf rather than an
// internal node.
func (c ChildRecord) IsLeaf() bool {
	return c.Index < 0
}

// LeafID decodes the external leaf id for a leaf child record. Callers must
// check IsLeaf first; the result is meaningless for internal children.
func (c ChildRecord) LeafID() int32 {
	return -1 - c.Index
}

// LeafChildRecord builds a child record for leaf id carrying the given AABB.
// LeafCount for a leaf is always 1.
func LeafChildRecord(leafID int32, box geom.AABB) ChildRecord {
	return ChildRecord{Min: box.Min, Max: box.Max, Index: -1 - leafID, LeafCount: 1}
}

// Node is an internal BVH node: exactly two children, stored contiguously so
// that &node.A plus a fixed offset reaches node.B.
type Node struct {
	A ChildRecord
	B ChildRecord
}

// Metanode carries the parallel, per-node bookkeeping described in spec §3:
// the weak parent back-reference, this node's position in that parent, the
// repurposed refineFlag counter/boolean, and the local cost-change
// accumulator the refit walk publishes.
//
// swapClaim is implementation-internal: a single-slot try-lock used by
// IncrementalCacheOptimizeThreadSafe so that concurrent calls on overlapping
// neighborhoods degrade to "skip this frame" instead of corrupting the tree.
// It plays no role in any of the documented invariants.
type Metanode struct {
	Parent          int32
	IndexInParent   int8
	RefineFlag      int32
	LocalCostChange float64

	swapClaim int32
}

// Tree owns the Node and Metanode parallel arrays and provides index-based
// navigation. Node slots are allocated by a builder and are stable except
// during BinnedRefine (repacks a treelet's internal slots) and
// IncrementalCacheOptimizeThreadSafe (swaps two slots).
type Tree struct {
	Nodes     []Node
	Metanodes []Metanode
	leafCount int
}

// New wraps pre-built nodes/metanodes into a Tree. leafCount is the total
// number of leaves reachable from the root (0 for an empty tree, 1 for a
// single bare leaf with no internal nodes at all).
func New(nodes []Node, metanodes []Metanode, leafCount int) (*Tree, error) {
	if len(nodes) != len(metanodes) {
		return nil, ErrMismatchedArrays
	}
	if leafCount < 0 {
		return nil, ErrInvalidLeafCount
	}
	return &Tree{Nodes: nodes, Metanodes: metanodes, leafCount: leafCount}, nil
}

// NodeCount returns the number of internal nodes in the tree.
func (t *Tree) NodeCount() int {
	return len(t.Nodes)
}

// LeafCount returns the total number of leaves reachable from the root.
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// Root returns the root node index, 0 when the tree has at least one
// internal node, or -1 for an empty/single-leaf tree with no internal nodes.
func (t *Tree) Root() int32 {
	if len(t.Nodes) == 0 {
		return -1
	}
	return 0
}

// RootMetanode returns a pointer to the root's Metanode, or nil if the tree
// has no internal nodes.
func (t *Tree) RootMetanode() *Metanode {
	if len(t.Metanodes) == 0 {
		return nil
	}
	return &t.Metanodes[0]
}

// ScrubRefineFlags zeroes every metanode's RefineFlag. A partially-failed
// pass can leave RefineFlag dirty; hosts must call this before the next
// frame's pass runs after any reported allocation failure.
func (t *Tree) ScrubRefineFlags() {
	for i := range t.Metanodes {
		t.Metanodes[i].RefineFlag = 0
	}
}
