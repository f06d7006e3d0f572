package builder

import (
	"sort"

	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
)

// MedianSplit builds a *tree.Tree over leaves by recursively partitioning
// them at the median centroid along the largest-extent axis (or cfg's
// WithAxisSelector override). This is the recommended default constructor:
// a reasonably balanced starting tree in O(n log n), not SAH-optimal but
// good enough that refine's targeted rebuilds converge quickly.
func MedianSplit(leaves []geom.AABB, opts ...Option) (*tree.Tree, error) {
	cfg := newConfig(opts...)
	items := leafNodes(leaves)

	var root *node
	if len(items) > 0 {
		root = medianSplit(items, cfg)
	}
	return toTree(root, len(leaves))
}

func medianSplit(items []*node, cfg *config) *node {
	if len(items) == 1 {
		return items[0]
	}

	centroidBounds := geom.EmptyAABB()
	for _, it := range items {
		centroidBounds = geom.Union(centroidBounds, geom.PointAABB(it.bounds.Center()))
	}
	axis := cfg.axisSelector(centroidBounds.Extent())

	sort.Slice(items, func(i, j int) bool {
		return component(items[i].bounds.Center(), axis) < component(items[j].bounds.Center(), axis)
	})

	mid := len(items) / 2
	left := medianSplit(items[:mid], cfg)
	right := medianSplit(items[mid:], cfg)
	return pair(left, right)
}

func component(v geom.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
