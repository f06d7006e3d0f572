package selector_test

import (
	"testing"

	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/selector"
	"github.com/katalvlaran/bvhrefit/tree"
	"github.com/stretchr/testify/require"
)

func buildChainTree(t *testing.T) *tree.Tree {
	t.Helper()
	p := func(x float64) geom.AABB { return geom.PointAABB(geom.Vector3{X: x}) }

	node2 := tree.Node{A: tree.LeafChildRecord(2, p(2)), B: tree.LeafChildRecord(3, p(3))}
	node2Box := geom.Union(p(2), p(3))
	node1 := tree.Node{
		A: tree.LeafChildRecord(1, p(1)),
		B: tree.ChildRecord{Min: node2Box.Min, Max: node2Box.Max, Index: 2, LeafCount: 2},
	}
	node1Box := geom.Union(p(1), node2Box)
	node0 := tree.Node{
		A: tree.LeafChildRecord(0, p(0)),
		B: tree.ChildRecord{Min: node1Box.Min, Max: node1Box.Max, Index: 1, LeafCount: 3},
	}

	nodes := []tree.Node{node0, node1, node2}
	metanodes := []tree.Metanode{
		{Parent: -1, IndexInParent: 0},
		{Parent: 0, IndexInParent: 1},
		{Parent: 1, IndexInParent: 1},
	}
	tr, err := tree.New(nodes, metanodes, 4)
	require.NoError(t, err)
	return tr
}

func TestSelectAlwaysIncludesRoot(t *testing.T) {
	tr := buildChainTree(t)
	candidates := [][]int32{{1}, {2}}

	targets := selector.Select(tr, candidates, 0, 1.0, 0.5, dispatch.NewMainPool())

	require.Contains(t, targets, int32(0))
	require.Equal(t, int32(1), tr.Metanodes[0].RefineFlag)
}

func TestSelectProducesNoDuplicates(t *testing.T) {
	tr := buildChainTree(t)
	candidates := [][]int32{{1, 2}}

	targets := selector.Select(tr, candidates, 3, 2.0, 1.0, dispatch.NewMainPool())

	seen := make(map[int32]bool)
	for _, target := range targets {
		require.False(t, seen[target], "duplicate target %d", target)
		seen[target] = true
	}
}

func TestSelectWithNoCandidatesStillPicksRoot(t *testing.T) {
	tr := buildChainTree(t)

	targets := selector.Select(tr, nil, 0, 1.0, 0.0, dispatch.NewMainPool())

	require.Equal(t, []int32{0}, targets)
}
