// Package refit implements the refit-and-mark worker phase: workers claim
// refit-roots via atomic post-increment of a shared counter, run
// tree.RefitAndMark or tree.RefitAndMeasure (decoded from the sign-encoded
// refit-roots list), and fan in bottom-up toward the root by atomically
// decrementing each ancestor's RefineFlag — the last worker to arrive at a
// node is the one that processes it.
package refit
