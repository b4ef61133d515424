package builder

import (
	"fmt"

	"github.com/euriklis/grapho/core"
)

// addIndexedNodes inserts nodes idFn(start)..idFn(start+count-1) with the
// given payloads (nil slice means no payloads).
func addIndexedNodes(g *core.Graph, cfg builderConfig, start, count int, payloads []any) error {
	for i := 0; i < count; i++ {
		var data any
		if payloads != nil {
			data = payloads[i]
		}
		name := cfg.idFn(start + i)
		if err := g.AddNode(name, data); err != nil {
			return fmt.Errorf("AddNode(%s): %w", name, err)
		}
	}

	return nil
}

// connect wires the symmetric pair u↔v, skipping directions that already
// exist. One weight is drawn per pair so both directions agree.
func connect(g *core.Graph, cfg builderConfig, u, v string) error {
	var opts []core.EdgeOption
	if g.Weighted() {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	for _, pair := range [2][2]string{{u, v}, {v, u}} {
		if g.HasEdge(pair[0], pair[1]) {
			continue
		}
		if _, err := g.AddEdge(pair[0], pair[1], nil, opts...); err != nil {
			return fmt.Errorf("AddEdge(%s,%s): %w", pair[0], pair[1], err)
		}
	}

	return nil
}

// checkProbability validates p ∈ [0, 1] for the named constructor.
func checkProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%v not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return nil
}

// needRNG enforces the explicit-randomness contract for truly stochastic
// parameter ranges.
func needRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
