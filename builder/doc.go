// Package builder constructs an initial *tree.Tree from a flat slice of
// leaf AABBs, so the rest of the repository has something concrete to
// refit, select, refine, and cache-optimize.
//
// None of these constructors are SAH-optimal; that is what refine is for.
// They differ only in how good (or deliberately bad) a starting shape they
// hand to the pass, which is useful for exercising refine/cache-optimize
// under varying initial volatility.
//
// Each constructor lives in its own impl_*.go file and is configured
// through a functional Option resolved into an immutable config.
package builder
