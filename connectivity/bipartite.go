// Package connectivity: bipartite test.

package connectivity

import "github.com/euriklis/grapho/core"

// Bipartite reports whether the undirected projection is two-colorable:
// whether the nodes split into two sets with no admissible edge inside
// either set. It BFS-colors each component and answers false at the first
// same-color adjacency conflict.
// Complexity: O(V + E).
func Bipartite(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	color := make(map[string]int, g.Order())
	for _, root := range g.NodeNames() {
		if _, seen := color[root]; seen {
			continue
		}
		color[root] = 0
		queue := []string{root}
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			for _, nbr := range undirectedNeighbors(g, curr, o.WeightFunc) {
				c, seen := color[nbr]
				if !seen {
					color[nbr] = 1 - color[curr]
					queue = append(queue, nbr)
					continue
				}
				if c == color[curr] {
					return false, nil
				}
			}
		}
	}

	return true, nil
}
