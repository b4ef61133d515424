// Deterministic self-similar topologies.

package builder

import (
	"fmt"

	"github.com/euriklis/grapho/core"
)

const (
	methodHierarchical = "Hierarchical"
	methodApollonian   = "Apollonian"
)

// Hierarchical returns a Constructor building a pseudofractal modular
// network. Level 1 is a complete module of base nodes rooted at node 0;
// each further level replicates the whole current structure base−1 times
// and wires every replica node back to the root, producing base^levels
// nodes with dense local modules and a heavily connected hub.
// Deterministic. Requires base ≥ 3 and levels ≥ 1.
// Complexity: O(base^levels · base).
func Hierarchical(base, levels int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if base < 3 {
			return fmt.Errorf("%s: base=%d: %w", methodHierarchical, base, ErrTooFewNodes)
		}
		if levels < 1 {
			return fmt.Errorf("%s: levels=%d: %w", methodHierarchical, levels, ErrTooFewNodes)
		}

		// Undirected pair list over node indices, grown level by level.
		var pairs [][2]int
		for i := 0; i < base; i++ {
			for j := i + 1; j < base; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
		size := base
		for level := 2; level <= levels; level++ {
			block := len(pairs)
			for replica := 1; replica < base; replica++ {
				offset := replica * size
				for _, pair := range pairs[:block] {
					pairs = append(pairs, [2]int{pair[0] + offset, pair[1] + offset})
				}
				// Every replica node joins the root hub.
				for i := 0; i < size; i++ {
					pairs = append(pairs, [2]int{0, offset + i})
				}
			}
			size *= base
		}

		if err := addIndexedNodes(g, cfg, 0, size, nil); err != nil {
			return fmt.Errorf("%s: %w", methodHierarchical, err)
		}
		for _, pair := range pairs {
			if err := connect(g, cfg, cfg.idFn(pair[0]), cfg.idFn(pair[1])); err != nil {
				return fmt.Errorf("%s: %w", methodHierarchical, err)
			}
		}

		return nil
	}
}

// Apollonian returns a Constructor building the Apollonian network of the
// given depth: a triangle whose faces are recursively subdivided, each
// generation dropping one new node into every triangular face and wiring
// it to the three corners. Depth 0 is the bare triangle. Deterministic.
// Complexity: O(3^depth).
func Apollonian(depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < 0 {
			return fmt.Errorf("%s: depth=%d: %w", methodApollonian, depth, ErrTooFewNodes)
		}

		pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
		faces := [][3]int{{0, 1, 2}}
		next := 3
		for gen := 0; gen < depth; gen++ {
			grown := make([][3]int, 0, 3*len(faces))
			for _, f := range faces {
				c := next
				next++
				pairs = append(pairs, [2]int{f[0], c}, [2]int{f[1], c}, [2]int{f[2], c})
				grown = append(grown,
					[3]int{f[0], f[1], c},
					[3]int{f[0], f[2], c},
					[3]int{f[1], f[2], c},
				)
			}
			faces = grown
		}

		if err := addIndexedNodes(g, cfg, 0, next, nil); err != nil {
			return fmt.Errorf("%s: %w", methodApollonian, err)
		}
		for _, pair := range pairs {
			if err := connect(g, cfg, cfg.idFn(pair[0]), cfg.idFn(pair[1])); err != nil {
				return fmt.Errorf("%s: %w", methodApollonian, err)
			}
		}

		return nil
	}
}
