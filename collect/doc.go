// Package collect implements the wavefront collector: a single-threaded,
// main-thread pass over the tree that partitions it into refit-roots whose
// subtree leaf counts respect a refinement leaf-count threshold, plus an
// initial set of refinement candidates discovered along the way.
//
// The traversal is a single plain recursive function with a couple of
// output slices — no generics, no channels.
package collect
