// Package selector implements the target selector: given the per-worker
// candidate lists refit-and-mark produced, it decides how many refinement
// targets to pick this frame (GetRefineTuning), strides across the
// concatenated candidate lists to pick them, and guarantees the root is
// always refined unless the stride already picked it.
//
// GetRefineTuning is a small pure function of its explicit inputs: no
// hidden state, a single deterministic output for a given (frameIndex,
// candidateCount, aggressivenessScale, refitCostChange) tuple. Select is
// deterministic in those inputs plus the candidate lists and the tree's
// RefineFlag values, which it reads and sets on the chosen targets.
package selector
