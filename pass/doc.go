// Package pass exposes RefitAndRefine, the single per-frame entry point a
// host calls: it wires collect → refit → selector → refine → cacheopt
// behind one function, the way a host is expected to drive this engine
// once per simulation frame.
package pass
