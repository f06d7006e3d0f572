package pass

// Option customizes one call to RefitAndRefine. As a rule, option
// constructors validate and panic on meaningless inputs; RefitAndRefine
// itself never panics on valid preconditions.
type Option func(cfg *config)

// config holds per-call tuning knobs, defaulted to sensible values so a
// host can call RefitAndRefine with no options at all.
type config struct {
	maximumSubtrees              int
	refinementLeafCountThreshold int32
	refineAggressivenessScale    float64
	cacheOptimizeAggressivenessScale float64
}

const (
	defaultMaximumSubtrees              = 7
	defaultRefinementLeafCountThreshold = 4
)

func newConfig(opts ...Option) *config {
	cfg := &config{
		maximumSubtrees:                  defaultMaximumSubtrees,
		refinementLeafCountThreshold:     defaultRefinementLeafCountThreshold,
		refineAggressivenessScale:        1,
		cacheOptimizeAggressivenessScale: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaximumSubtrees overrides BinnedRefine's leaf-count cap per treelet.
// Panics if n < 2 (a cap below 2 can never produce a rebuildable treelet).
func WithMaximumSubtrees(n int) Option {
	if n < 2 {
		panic("pass: WithMaximumSubtrees(n < 2)")
	}
	return func(cfg *config) {
		cfg.maximumSubtrees = n
	}
}

// WithRefinementLeafCountThreshold overrides the wavefront cutoff the
// collector and refit-and-mark phase use. Panics if n < 0.
func WithRefinementLeafCountThreshold(n int32) Option {
	if n < 0 {
		panic("pass: WithRefinementLeafCountThreshold(n < 0)")
	}
	return func(cfg *config) {
		cfg.refinementLeafCountThreshold = n
	}
}

// WithRefineAggressiveness overrides GetRefineTuning's aggressivenessScale.
// Panics if scale < 0.
func WithRefineAggressiveness(scale float64) Option {
	if scale < 0 {
		panic("pass: WithRefineAggressiveness(scale < 0)")
	}
	return func(cfg *config) {
		cfg.refineAggressivenessScale = scale
	}
}

// WithCacheOptimizeAggressiveness overrides GetCacheOptimizeTuning's scale
// factor. Panics if scale < 0.
func WithCacheOptimizeAggressiveness(scale float64) Option {
	if scale < 0 {
		panic("pass: WithCacheOptimizeAggressiveness(scale < 0)")
	}
	return func(cfg *config) {
		cfg.cacheOptimizeAggressivenessScale = scale
	}
}
