// Random topologies: independent wiring, community blocks, latent space.

package builder

import (
	"fmt"

	"github.com/euriklis/grapho/core"
)

const (
	methodErdosRenyi      = "ErdosRenyi"
	methodStochasticBlock = "StochasticBlock"
	methodLatentSpace     = "LatentSpace"
)

// ErdosRenyi returns a Constructor sampling the G(n, p) model: every
// unordered pair is wired independently with probability p, each wired
// pair materializing as two opposite directed edges. p=0 yields zero
// edges and p=1 the complete symmetric network with n·(n−1) directed
// edges; both extremes are deterministic and need no random source.
// Complexity: O(n²) Bernoulli trials.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodErdosRenyi, n, ErrTooFewNodes)
		}
		if err := checkProbability(methodErdosRenyi, p); err != nil {
			return err
		}
		if p > 0 && p < 1 {
			if err := needRNG(methodErdosRenyi, cfg); err != nil {
				return err
			}
		}

		if err := addIndexedNodes(g, cfg, 0, n, nil); err != nil {
			return fmt.Errorf("%s: %w", methodErdosRenyi, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 0 {
					continue
				}
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: %w", methodErdosRenyi, err)
				}
			}
		}

		return nil
	}
}

// StochasticBlock returns a Constructor sampling the planted-partition
// model: nodes split into consecutive communities of the given sizes,
// same-community pairs wired with probability pIn and cross-community
// pairs with pOut, always as symmetric directed pairs.
// Complexity: O(N²) trials for N total nodes.
func StochasticBlock(sizes []int, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no communities: %w", methodStochasticBlock, ErrTooFewNodes)
		}
		total := 0
		for _, s := range sizes {
			if s < 1 {
				return fmt.Errorf("%s: community size %d: %w", methodStochasticBlock, s, ErrTooFewNodes)
			}
			total += s
		}
		for _, p := range [2]float64{pIn, pOut} {
			if err := checkProbability(methodStochasticBlock, p); err != nil {
				return err
			}
		}
		stochastic := (pIn > 0 && pIn < 1) || (pOut > 0 && pOut < 1)
		if stochastic {
			if err := needRNG(methodStochasticBlock, cfg); err != nil {
				return err
			}
		}

		// block[i] is the community index of node i.
		block := make([]int, 0, total)
		for b, s := range sizes {
			for k := 0; k < s; k++ {
				block = append(block, b)
			}
		}

		if err := addIndexedNodes(g, cfg, 0, total, nil); err != nil {
			return fmt.Errorf("%s: %w", methodStochasticBlock, err)
		}
		for i := 0; i < total; i++ {
			for j := i + 1; j < total; j++ {
				p := pOut
				if block[i] == block[j] {
					p = pIn
				}
				if p == 0 {
					continue
				}
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: %w", methodStochasticBlock, err)
				}
			}
		}

		return nil
	}
}

// LatentSpace returns a Constructor sampling a random-dot-product graph:
// every node draws a position uniformly from [0,1)^dim (stored as its
// payload, a []float64) and two nodes are wired symmetrically iff the dot
// product of their positions reaches the threshold.
// Complexity: O(n·dim + n²·dim).
func LatentSpace(n, dim int, threshold float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodLatentSpace, n, ErrTooFewNodes)
		}
		if dim < 1 {
			return fmt.Errorf("%s: dim=%d: %w", methodLatentSpace, dim, ErrTooFewNodes)
		}
		if err := needRNG(methodLatentSpace, cfg); err != nil {
			return err
		}

		positions := make([][]float64, n)
		payloads := make([]any, n)
		for i := range positions {
			pos := make([]float64, dim)
			for d := range pos {
				pos[d] = cfg.rng.Float64()
			}
			positions[i] = pos
			payloads[i] = pos
		}

		if err := addIndexedNodes(g, cfg, 0, n, payloads); err != nil {
			return fmt.Errorf("%s: %w", methodLatentSpace, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dot := 0.0
				for d := 0; d < dim; d++ {
					dot += positions[i][d] * positions[j][d]
				}
				if dot < threshold {
					continue
				}
				if err := connect(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: %w", methodLatentSpace, err)
				}
			}
		}

		return nil
	}
}
