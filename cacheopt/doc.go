// Package cacheopt implements the cache optimizer: a set of contiguous
// node-slot ranges, one range per task, whose start indices rotate across
// frames so that the whole array is swept over many frames rather than only
// its first few slots. The starts wrap modulo the node count, so ranges of
// different tasks can overlap. Each worker scans its range calling
// tree.IncrementalCacheOptimizeThreadSafe, restoring the "child A at slot
// N+1" locality invariant that refine and earlier edits break.
package cacheopt
