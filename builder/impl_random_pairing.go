package builder

import (
	"fmt"

	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
)

const methodRandomPairing = "RandomPairing"

// RandomPairing builds a tree by repeatedly picking two random scratch
// nodes from the working set and merging them into one, until a single
// root remains. Requires a seeded RNG (WithSeed/WithRand); deterministic for
// a fixed seed and leaf order. Useful for fuzz/property tests that want a
// random-but-reproducible starting shape rather than MedianSplit's
// balanced one.
func RandomPairing(leaves []geom.AABB, opts ...Option) (*tree.Tree, error) {
	cfg := newConfig(opts...)
	if len(leaves) > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomPairing, ErrNeedRandSource)
	}

	items := leafNodes(leaves)
	for len(items) > 1 {
		i := cfg.rng.Intn(len(items))
		a := items[i]
		items = append(items[:i], items[i+1:]...)

		j := cfg.rng.Intn(len(items))
		b := items[j]
		items = append(items[:j], items[j+1:]...)

		items = append(items, pair(a, b))
	}

	var root *node
	if len(items) == 1 {
		root = items[0]
	}
	return toTree(root, len(leaves))
}
