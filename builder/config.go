package builder

import (
	"math/rand"

	"github.com/katalvlaran/bvhrefit/geom"
)

// Option customizes a Constructor by mutating a config before tree
// construction begins. As a rule, option constructors validate and panic on
// meaningless inputs (programmer error); constructors themselves never
// panic.
type Option func(cfg *config)

// config holds the resolved, immutable-after-construction parameters shared
// across constructors: an optional RNG for the stochastic ones, and an
// axis-selection policy the median-split constructor uses to pick its split
// dimension.
type config struct {
	rng          *rand.Rand
	axisSelector func(extent geom.Vector3) int
}

// defaultAxisSelector picks the axis with the largest extent — the
// conventional, good-in-practice default for a median-split builder.
func defaultAxisSelector(extent geom.Vector3) int {
	axis := 0
	best := extent.X
	if extent.Y > best {
		axis, best = 1, extent.Y
	}
	if extent.Z > best {
		axis = 2
	}
	return axis
}

// newConfig returns a config initialized with defaults, then applies each
// Option in order. Later options override earlier ones.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:          nil,
		axisSelector: defaultAxisSelector,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
