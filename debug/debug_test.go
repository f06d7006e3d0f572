package debug_test

import (
	"testing"

	"github.com/katalvlaran/bvhrefit/debug"
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
	"github.com/stretchr/testify/require"
)

func TestAssertNoOpWhenDisabled(t *testing.T) {
	debug.Enabled = false
	require.NotPanics(t, func() {
		debug.Assert(false, "should never panic while disabled")
	})
}

func TestAssertPanicsWhenEnabledAndFalse(t *testing.T) {
	debug.Enabled = true
	defer func() { debug.Enabled = false }()

	require.Panics(t, func() {
		debug.Assert(false, "boom %d", 7)
	})
}

func TestNoDuplicateTargetsCatchesRepeat(t *testing.T) {
	debug.Enabled = true
	defer func() { debug.Enabled = false }()

	require.Panics(t, func() {
		debug.NoDuplicateTargets([]int32{1, 2, 1})
	})
	require.NotPanics(t, func() {
		debug.NoDuplicateTargets([]int32{1, 2, 3})
	})
}

func TestScrubZeroesAllRefineFlags(t *testing.T) {
	box := geom.PointAABB(geom.Vector3{})
	nodes := []tree.Node{{A: tree.LeafChildRecord(0, box), B: tree.LeafChildRecord(1, box)}}
	metanodes := []tree.Metanode{{Parent: -1, RefineFlag: 3}}
	tr, err := tree.New(nodes, metanodes, 2)
	require.NoError(t, err)

	debug.Scrub(tr)

	require.Zero(t, tr.Metanodes[0].RefineFlag)
}

func TestAssertCleanStartCatchesDirtyFlag(t *testing.T) {
	debug.Enabled = true
	defer func() { debug.Enabled = false }()

	box := geom.PointAABB(geom.Vector3{})
	nodes := []tree.Node{{A: tree.LeafChildRecord(0, box), B: tree.LeafChildRecord(1, box)}}
	metanodes := []tree.Metanode{{Parent: -1, RefineFlag: 1}}
	tr, err := tree.New(nodes, metanodes, 2)
	require.NoError(t, err)

	require.Panics(t, func() {
		debug.AssertCleanStart(tr)
	})
}
