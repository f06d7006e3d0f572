package selector

import "math"

// knuthMultiplier is Knuth's multiplicative hash constant, used to scatter
// frameIndex across [0, period) without introducing a floating-point
// irrational such as a frameIndex-times-pi rotation — integer arithmetic
// keeps GetRefineTuning exactly reproducible across platforms, which plain
// float multiplication is not guaranteed to be.
const knuthMultiplier = 2654435761

// GetRefineTuning decides how many refinement targets to pick this frame and
// the stride (period, offset) used to pick them from the concatenated
// candidate-list ring. It must be a pure function of its inputs so that the
// same frame, replayed with the same candidates, always picks the same
// targets.
//
// targetCount grows with aggressivenessScale and with refitCostChange (a
// more volatile tree earns more refinement this frame), is never less than
// 1 when there is at least one candidate, and never exceeds candidateCount.
func GetRefineTuning(frameIndex int64, candidateCount int, aggressivenessScale float64, refitCostChange float64) (targetCount, period int, offset int64) {
	if candidateCount <= 0 {
		return 0, 1, 0
	}

	raw := aggressivenessScale * (1 + 8*refitCostChange) * math.Sqrt(float64(candidateCount))
	targetCount = int(math.Round(raw))
	if targetCount < 1 {
		targetCount = 1
	}
	if targetCount > candidateCount {
		targetCount = candidateCount
	}

	period = candidateCount / targetCount
	if period < 1 {
		period = 1
	}

	offset = (frameIndex * knuthMultiplier) % int64(period)
	if offset < 0 {
		offset += int64(period)
	}

	return targetCount, period, offset
}
