package builder

import "errors"

// Sentinel errors. Constructors attach context with %w wrapping; callers
// branch with errors.Is.
var (
	// ErrTooFewNodes reports a size parameter below the constructor's
	// minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability reports a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports a stochastic constructor resolved without
	// a random source; set WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed reports that construction could not complete
	// without breaking invariants, or a nil constructor was supplied.
	ErrConstructFailed = errors.New("builder: construction failed")
)
