// Package refine implements the refine worker phase: workers claim
// refinement targets via the same atomic post-increment counter refit
// uses, and call tree.BinnedRefine on each. Refinement targets never nest —
// overlap checking is an assertion, not logic the pass depends on — so no
// cross-worker synchronization beyond the claim counter is needed: every
// target's slot range is disjoint from every other's.
//
// The worker-claim loop mirrors refit's shape directly: both dispatches
// share the same atomic-counter work-claim primitive.
package refine
