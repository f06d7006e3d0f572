package debug

import "github.com/katalvlaran/bvhrefit/tree"

// Scrub zeroes every metanode's RefineFlag. A host must call this before
// the next frame's pass after any reported allocation failure from a
// worker or the setup phase, since a failed worker may have left its
// fan-in counters in a partial state.
func Scrub(t *tree.Tree) {
	t.ScrubRefineFlags()
}

// AssertCleanStart asserts every metanode's RefineFlag is 0, the
// precondition every pass requires at the start: a nonzero RefineFlag at
// pass start is a fatal invariant violation, indicating a prior-frame bug —
// most likely a skipped Scrub after an allocation failure.
func AssertCleanStart(t *tree.Tree) {
	if !Enabled {
		return
	}
	for i := range t.Metanodes {
		Assert(t.Metanodes[i].RefineFlag == 0, "metanode %d has nonzero refineFlag %d at pass start", i, t.Metanodes[i].RefineFlag)
	}
}
