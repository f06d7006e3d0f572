package builder

import "errors"

// ErrNeedRandSource indicates RandomPairing was invoked with leaves but
// without a seeded RNG in the resolved config (WithSeed/WithRand must be
// set).
var ErrNeedRandSource = errors.New("builder: rng is required")
