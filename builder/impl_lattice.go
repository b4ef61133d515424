// Lattice topologies: ring lattice and its small-world rewiring.

package builder

import (
	"fmt"
	"sort"

	"github.com/euriklis/grapho/core"
)

const (
	methodRingLattice   = "RingLattice"
	methodWattsStrogatz = "WattsStrogatz"
)

// ringPairs enumerates the undirected pairs of the (n, k) ring lattice:
// each node wired to its k clockwise neighbors modulo n. The pair set is
// canonical (smaller index first) and deduplicated, so k up to n/2 is
// safe.
func ringPairs(n, k int) [][2]int {
	seen := make(map[[2]int]struct{}, n*k)
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for d := 1; d <= k; d++ {
			a, b := i, (i+d)%n
			if a == b {
				continue
			}
			if b < a {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}

// RingLattice returns a Constructor building the regular (n, k) ring:
// n nodes on a circle, each wired symmetrically to its k nearest
// neighbors per side. Requires n ≥ 3 and 1 ≤ k ≤ n/2. Deterministic.
// Complexity: O(n·k).
func RingLattice(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d: %w", methodRingLattice, n, ErrTooFewNodes)
		}
		if k < 1 || 2*k > n {
			return fmt.Errorf("%s: k=%d out of range for n=%d: %w", methodRingLattice, k, n, ErrTooFewNodes)
		}

		if err := addIndexedNodes(g, cfg, 0, n, nil); err != nil {
			return fmt.Errorf("%s: %w", methodRingLattice, err)
		}
		for _, pair := range ringPairs(n, k) {
			if err := connect(g, cfg, cfg.idFn(pair[0]), cfg.idFn(pair[1])); err != nil {
				return fmt.Errorf("%s: %w", methodRingLattice, err)
			}
		}

		return nil
	}
}

// WattsStrogatz returns a Constructor building the small-world model:
// the (n, k) ring lattice with every lattice pair rewired with
// probability beta to a uniformly chosen non-neighbor of its lower
// endpoint. beta=0 reproduces the lattice exactly; beta=1 rewires every
// pair. Requires a random source whenever beta > 0.
// Complexity: O(n·k) expected.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d: %w", methodWattsStrogatz, n, ErrTooFewNodes)
		}
		if k < 1 || 2*k > n {
			return fmt.Errorf("%s: k=%d out of range for n=%d: %w", methodWattsStrogatz, k, n, ErrTooFewNodes)
		}
		if err := checkProbability(methodWattsStrogatz, beta); err != nil {
			return err
		}
		if beta > 0 {
			if err := needRNG(methodWattsStrogatz, cfg); err != nil {
				return err
			}
		}

		// Neighbor sets over node indices; mutated as pairs rewire.
		adj := make([]map[int]struct{}, n)
		for i := range adj {
			adj[i] = make(map[int]struct{}, 2*k)
		}
		join := func(a, b int) {
			adj[a][b] = struct{}{}
			adj[b][a] = struct{}{}
		}
		cut := func(a, b int) {
			delete(adj[a], b)
			delete(adj[b], a)
		}

		pairs := ringPairs(n, k)
		for _, pair := range pairs {
			join(pair[0], pair[1])
		}
		for _, pair := range pairs {
			if beta == 0 || (beta < 1 && cfg.rng.Float64() >= beta) {
				continue
			}
			// Rewire the far endpoint to a fresh target; a saturated node
			// keeps its lattice pair.
			a, b := pair[0], pair[1]
			if len(adj[a]) >= n-1 {
				continue
			}
			for {
				c := cfg.rng.Intn(n)
				if c == a {
					continue
				}
				if _, taken := adj[a][c]; taken {
					continue
				}
				cut(a, b)
				join(a, c)
				break
			}
		}

		// Materialize in canonical order so weight draws stay reproducible.
		var rewired [][2]int
		for a := 0; a < n; a++ {
			for b := range adj[a] {
				if a < b {
					rewired = append(rewired, [2]int{a, b})
				}
			}
		}
		sort.Slice(rewired, func(i, j int) bool {
			if rewired[i][0] != rewired[j][0] {
				return rewired[i][0] < rewired[j][0]
			}

			return rewired[i][1] < rewired[j][1]
		})

		if err := addIndexedNodes(g, cfg, 0, n, nil); err != nil {
			return fmt.Errorf("%s: %w", methodWattsStrogatz, err)
		}
		for _, pair := range rewired {
			if err := connect(g, cfg, cfg.idFn(pair[0]), cfg.idFn(pair[1])); err != nil {
				return fmt.Errorf("%s: %w", methodWattsStrogatz, err)
			}
		}

		return nil
	}
}
