package builder

import (
	"fmt"

	"github.com/euriklis/grapho/core"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved configuration. Constructors validate their captured parameters
// before touching g and return sentinel errors on violation.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a fresh graph with gopts, resolves the builder
// configuration from bopts, and applies the constructors in order. The
// first constructor error aborts the build; no partial cleanup is
// attempted. Same inputs, options, seed, and order produce the identical
// graph.
func Build(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
