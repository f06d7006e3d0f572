package selector_test

import (
	"testing"

	"github.com/katalvlaran/bvhrefit/selector"
	"github.com/stretchr/testify/require"
)

func TestGetRefineTuningIsDeterministic(t *testing.T) {
	a1, p1, o1 := selector.GetRefineTuning(7, 100, 1.0, 0.2)
	a2, p2, o2 := selector.GetRefineTuning(7, 100, 1.0, 0.2)
	require.Equal(t, a1, a2)
	require.Equal(t, p1, p2)
	require.Equal(t, o1, o2)
}

func TestGetRefineTuningClampsToCandidateCount(t *testing.T) {
	targetCount, _, _ := selector.GetRefineTuning(0, 3, 100.0, 10.0)
	require.LessOrEqual(t, targetCount, 3)
}

func TestGetRefineTuningZeroCandidatesNoOp(t *testing.T) {
	targetCount, period, offset := selector.GetRefineTuning(5, 0, 1.0, 1.0)
	require.Zero(t, targetCount)
	require.Equal(t, 1, period)
	require.Zero(t, offset)
}

func TestGetRefineTuningGrowsWithCostChange(t *testing.T) {
	low, _, _ := selector.GetRefineTuning(0, 1000, 1.0, 0.0)
	high, _, _ := selector.GetRefineTuning(0, 1000, 1.0, 5.0)
	require.Greater(t, high, low)
}
