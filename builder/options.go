package builder

import (
	"math/rand"

	"github.com/katalvlaran/bvhrefit/geom"
)

// WithRand provides an explicit RNG for stochastic constructors (currently
// only RandomPairing). Panics on nil: option constructors validate eagerly
// and panic on programmer error, rather than deferring to a runtime error.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *config) {
		cfg.rng = r
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and uses it as the RNG
// source. Use this in tests for reproducible RandomPairing trees.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAxisSelector overrides MedianSplit's split-axis policy. Panics on nil.
func WithAxisSelector(fn func(extent geom.Vector3) int) Option {
	if fn == nil {
		panic("builder: WithAxisSelector(nil)")
	}
	return func(cfg *config) {
		cfg.axisSelector = fn
	}
}
