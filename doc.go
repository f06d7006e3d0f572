// Package bvhrefit is a parallel BVH maintenance engine: the
// refit-and-refine-and-cache-optimize pass a real-time rigid-body physics
// runtime runs once per simulation frame over a dynamic binary tree of
// axis-aligned bounding boxes.
//
// Given a tree whose leaf AABBs have been mutated by object motion, the
// pass (a) repairs internal AABBs bottom-up, (b) selects a subset of
// subtrees whose shape has degraded and rebuilds them with a binned
// surface-area-heuristic builder, and (c) performs an incremental,
// rotation-based node-slot reshuffle to restore spatial locality.
//
// Subpackages:
//
//	geom/      — AABB, Vector3, bounds metric, union
//	tree/      — node/metanode store; refit, binned-refine, cache-optimize primitives
//	dispatch/  — worker dispatcher interface + default implementations, buffer pools
//	collect/   — wavefront collector (partitions the tree into refit-roots)
//	refit/     — refit-and-mark worker phase
//	selector/  — target selector, stride sampling, tuning formulas
//	refine/    — refine worker phase
//	cacheopt/  — cache optimizer scheduling and per-worker pass
//	debug/     — togglable invariant assertions and flag scrub
//	builder/   — bulk AABB-tree construction
//	pass/      — RefitAndRefine, the public per-frame entry point
//
// Quick usage:
//
//	tr, _ := builder.MedianSplit(leafBoxes)
//	pool := dispatch.NewMainPool()
//	d := dispatch.NewErrgroupDispatcher(runtime.NumCPU())
//	err := pass.RefitAndRefine(tr, pool, d, frameIndex)
package bvhrefit
