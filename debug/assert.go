package debug

import "fmt"

// Enabled gates Assert. It defaults to false (release builds pay nothing for
// invariant checks); set it to true in test and development builds that
// want fatal-on-corruption behavior for invariant violations such as a
// duplicate refinement target, overlapping targets, or a RefineFlag left
// nonzero at pass start.
var Enabled = false

// Assert panics with a formatted message if condition is false and Enabled
// is true; it is a no-op otherwise. Call sites are the one diagnostic
// surface this package exposes for programmer-error-class invariant
// violations — not for ordinary, expected runtime conditions.
func Assert(condition bool, format string, args ...interface{}) {
	if !Enabled || condition {
		return
	}
	panic(fmt.Sprintf("debug assertion failed: "+format, args...))
}

// NoDuplicateTargets asserts that targets contains no repeated node index.
func NoDuplicateTargets(targets []int32) {
	if !Enabled {
		return
	}
	seen := make(map[int32]bool, len(targets))
	for _, target := range targets {
		Assert(!seen[target], "duplicate refinement target %d", target)
		seen[target] = true
	}
}
