package builder

import (
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
)

// Linear builds a left-to-right chain over leaves in input order: leaf 0
// paired with leaf 1, that pair paired with leaf 2, and so on. It is
// deliberately a poor starting shape — an O(n)-deep, unbalanced tree with
// terrible SAH and terrible cache locality — useful as a worst-case fixture
// for exercising refine and cache-optimize rather than for production use.
func Linear(leaves []geom.AABB, opts ...Option) (*tree.Tree, error) {
	items := leafNodes(leaves)
	if len(items) == 0 {
		return toTree(nil, 0)
	}

	root := items[0]
	for _, it := range items[1:] {
		root = pair(root, it)
	}
	return toTree(root, len(leaves))
}
