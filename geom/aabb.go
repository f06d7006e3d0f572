package geom

import "math"

// Vector3 is a plain 3-component float64 vector.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the component-wise difference v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Min returns the component-wise minimum of v and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y), Z: math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y), Z: math.Max(v.Z, other.Z)}
}

// AABB is an axis-aligned bounding box described by its Min and Max corners.
//
// An AABB is degenerate when any Max component is smaller than the matching
// Min component; BoundsMetric reports 0 for degenerate boxes instead of a
// negative area.
type AABB struct {
	Min Vector3
	Max Vector3
}

// EmptyAABB returns an AABB whose bounds are inverted (+inf/-inf corners),
// the correct identity element for repeated Union calls.
func EmptyAABB() AABB {
	return AABB{
		Min: Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// PointAABB returns a degenerate AABB whose Min and Max both equal p.
func PointAABB(p Vector3) AABB {
	return AABB{Min: p, Max: p}
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Extent returns Max - Min, the box's edge lengths along each axis.
func (b AABB) Extent() Vector3 {
	return b.Max.Sub(b.Min)
}

// BoundsMetric returns the surface area of the box: 2*(ex*ey + ey*ez + ez*ex).
// Degenerate boxes (any negative extent component) report 0, per spec.
func (b AABB) BoundsMetric() float64 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Equal reports whether a and b have bit-for-bit identical corners.
// Used by determinism tests instead of an epsilon
// comparison: the refit walk always sums the same floats in the same order
// for a fixed worker count and frame index, so exact equality is the correct
// check, not an approximation.
func (a AABB) Equal(b AABB) bool {
	return a.Min == b.Min && a.Max == b.Max
}

// Center returns the midpoint of the box, used by the bulk builder's
// median-split heuristic and by BinnedRefine's axis selection.
func (b AABB) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}
