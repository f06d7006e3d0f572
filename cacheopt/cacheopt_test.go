package cacheopt_test

import (
	"testing"

	"github.com/katalvlaran/bvhrefit/cacheopt"
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
	"github.com/stretchr/testify/require"
)

func TestGetCacheOptimizeTuningClampsToNodeCount(t *testing.T) {
	count := cacheopt.GetCacheOptimizeTuning(1000, 5.0, 2.0, 50)
	require.LessOrEqual(t, count, 50)
	require.GreaterOrEqual(t, count, 0)
}

func TestGetCacheOptimizeTuningGrowsWithVolatility(t *testing.T) {
	low := cacheopt.GetCacheOptimizeTuning(16, 0.0, 1.0, 1000)
	high := cacheopt.GetCacheOptimizeTuning(16, 5.0, 1.0, 1000)
	require.Greater(t, high, low)
}

// buildOutOfOrderTree builds a 3-internal-node tree where the root's child
// A points at slot 2 instead of slot 1, so IncrementalCacheOptimizeThreadSafe
// has an actual swap to perform at slot 0.
func buildOutOfOrderTree(t *testing.T) *tree.Tree {
	t.Helper()
	p := func(x float64) geom.AABB { return geom.PointAABB(geom.Vector3{X: x}) }

	node2 := tree.Node{A: tree.LeafChildRecord(3, p(3)), B: tree.LeafChildRecord(4, p(4))}
	node1 := tree.Node{A: tree.LeafChildRecord(1, p(1)), B: tree.LeafChildRecord(2, p(2))}
	node0 := tree.Node{
		A: tree.ChildRecord{Min: geom.Union(p(3), p(4)).Min, Max: geom.Union(p(3), p(4)).Max, Index: 2, LeafCount: 2},
		B: tree.ChildRecord{Min: geom.Union(p(1), p(2)).Min, Max: geom.Union(p(1), p(2)).Max, Index: 1, LeafCount: 2},
	}
	nodes := []tree.Node{node0, node1, node2}
	metanodes := []tree.Metanode{
		{Parent: -1},
		{Parent: 0, IndexInParent: 1},
		{Parent: 0, IndexInParent: 0},
	}
	tr, err := tree.New(nodes, metanodes, 4)
	require.NoError(t, err)
	return tr
}

func TestRunSwapsChildAIntoAdjacentSlot(t *testing.T) {
	tr := buildOutOfOrderTree(t)
	d := dispatch.NewSequentialDispatcher(1)

	err := cacheopt.Run(tr, d, 0, 4, dispatch.NewMainPool())
	require.NoError(t, err)
	require.Equal(t, int32(1), tr.Nodes[0].A.Index)
}

func TestRunWithZeroCountIsNoOp(t *testing.T) {
	tr := buildOutOfOrderTree(t)
	before := append([]tree.Node(nil), tr.Nodes...)
	d := dispatch.NewSequentialDispatcher(1)

	err := cacheopt.Run(tr, d, 3, 0, dispatch.NewMainPool())
	require.NoError(t, err)
	require.Equal(t, before, tr.Nodes)
}
