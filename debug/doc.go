// Package debug provides togglable invariant checks — fatal-by-design
// assertions for conditions that indicate a prior-frame bug, such as a
// duplicate refinement target or a RefineFlag left nonzero at pass start —
// and the flag-scrub operation a host must run after a reported allocation
// failure.
//
// Assert and Scrub extend the "option constructors panic, algorithms
// return errors" split used elsewhere in this repository to invariant
// checks that are fatal by design, gated so that a release build pays no
// cost for them.
package debug
