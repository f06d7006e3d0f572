// Package geom provides the minimal 3-float vector and axis-aligned
// bounding-box primitives shared by the bvhrefit engine.
//
// There is deliberately no general linear-algebra surface here (no
// quaternions, no matrices, no SIMD lanes) — the refit/refine/cache-optimize
// pass only ever unions boxes and measures their surface area, and geom
// exposes exactly that.
package geom
