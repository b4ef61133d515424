package builder

import (
	"math/rand"
	"strconv"

	"github.com/euriklis/grapho/core"
)

// builderConfig aggregates every knob the constructors read. It is passed
// by value, so closures cannot leak mutations to each other.
type builderConfig struct {
	// idFn renders a node index as its name.
	idFn func(int) string

	// rng drives stochastic constructors; nil means deterministic only.
	rng *rand.Rand

	// weightFn draws the weight of a generated edge when the graph is
	// weighted. It must tolerate a nil rng.
	weightFn func(*rand.Rand) float64
}

// BuilderOption mutates the resolved configuration.
type BuilderOption func(*builderConfig)

// WithIDScheme replaces the index-to-name function. The default renders
// decimal indices "0", "1", "2", ...
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithSeed installs a deterministic random source seeded with the given
// value. Required by stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned random source.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithWeightFn replaces the edge-weight generator used on weighted graphs.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}

// newBuilderConfig resolves options over deterministic defaults,
// last-wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return core.DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as its base-10 string.
func decimalID(i int) string { return strconv.Itoa(i) }
