// Package tree holds the Tree store: the Node/Metanode parallel arrays that
// back a dynamic bounding-volume hierarchy, plus the four subroutines the
// refit/refine/cache-optimize pass builds on (RefitAndMark, RefitAndMeasure,
// BinnedRefine, IncrementalCacheOptimizeThreadSafe).
//
// Tree is intentionally array-backed, not a pointer graph: every child
// reference is a signed index into Nodes (negative encodes a leaf id), so a
// treelet rebuild or a cache-optimize slot swap is an O(1) array write rather
// than a pointer-graph rewiring.
//
// Node, Metanode, and the swap/refit helpers are not safe for unsynchronized
// concurrent use except through the access patterns the refit/refine/
// cache-optimize packages already enforce (disjoint subtrees in refit and
// refine, claim-then-release slot locks in cache optimize).
package tree
