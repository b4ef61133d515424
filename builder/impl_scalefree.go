// Scale-free topologies: preferential attachment and rich-club closure.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/euriklis/grapho/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	methodRichClub       = "RichClub"
)

// BarabasiAlbert returns a Constructor growing a scale-free network by
// preferential attachment: an initial clique of m+1 nodes, then each new
// node wires to m distinct existing nodes chosen with probability
// proportional to their current degree. Requires n > m ≥ 1 and a random
// source.
// Complexity: O(n·m) expected.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 1 {
			return fmt.Errorf("%s: m=%d: %w", methodBarabasiAlbert, m, ErrTooFewNodes)
		}
		if n <= m {
			return fmt.Errorf("%s: n=%d must exceed m=%d: %w", methodBarabasiAlbert, n, m, ErrTooFewNodes)
		}
		if err := needRNG(methodBarabasiAlbert, cfg); err != nil {
			return err
		}

		if err := addIndexedNodes(g, cfg, 0, n, nil); err != nil {
			return fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
		}

		// Seed clique over the first m+1 nodes.
		seed := m + 1
		for i := 0; i < seed; i++ {
			for j := i + 1; j < seed; j++ {
				if err := connect(g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
				}
			}
		}

		// stubs repeats each node index once per incident undirected pair,
		// so a uniform draw over it is degree-proportional.
		var stubs []int
		for i := 0; i < seed; i++ {
			for j := 0; j < m; j++ {
				stubs = append(stubs, i)
			}
		}

		for i := seed; i < n; i++ {
			chosen := make(map[int]struct{}, m)
			for len(chosen) < m {
				c := stubs[cfg.rng.Intn(len(stubs))]
				chosen[c] = struct{}{}
			}
			targets := make([]int, 0, m)
			for c := range chosen {
				targets = append(targets, c)
			}
			sort.Ints(targets)
			for _, c := range targets {
				if err := connect(g, cfg, cfg.idFn(i), cfg.idFn(c)); err != nil {
					return fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
				}
				stubs = append(stubs, i, c)
			}
		}

		return nil
	}
}

// RichClub returns a Constructor that clique-ifies the top-degree subset
// of the graph built so far: the ceil(fraction·order) nodes of highest
// undirected degree (ties broken by ascending name) are wired into a
// complete symmetric subgraph. Compose it after another constructor.
// Requires 0 < fraction ≤ 1 and a non-empty graph. Deterministic.
// Complexity: O(V log V + C²) for a club of C nodes.
func RichClub(fraction float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if fraction <= 0 || fraction > 1 {
			return fmt.Errorf("%s: fraction=%v not in (0,1]: %w", methodRichClub, fraction, ErrInvalidProbability)
		}
		names := g.NodeNames()
		if len(names) == 0 {
			return fmt.Errorf("%s: empty graph: %w", methodRichClub, ErrTooFewNodes)
		}

		type ranked struct {
			name   string
			degree int
		}
		byDegree := make([]ranked, 0, len(names))
		for _, name := range names {
			hood, err := g.UndirectedNeighbors(name)
			if err != nil {
				return fmt.Errorf("%s: %w", methodRichClub, err)
			}
			byDegree = append(byDegree, ranked{name, len(hood)})
		}
		sort.SliceStable(byDegree, func(i, j int) bool {
			return byDegree[i].degree > byDegree[j].degree
		})

		club := int(math.Ceil(float64(len(names)) * fraction))
		if club > len(names) {
			club = len(names)
		}
		for i := 0; i < club; i++ {
			for j := i + 1; j < club; j++ {
				if err := connect(g, cfg, byDegree[i].name, byDegree[j].name); err != nil {
					return fmt.Errorf("%s: %w", methodRichClub, err)
				}
			}
		}

		return nil
	}
}
