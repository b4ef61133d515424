// Package connectivity: whole-graph connectivity test.

package connectivity

import "github.com/euriklis/grapho/core"

// IsConnected reports whether every node is reachable from every other
// when edges are treated as undirected. A zero-node graph is connected by
// definition.
// Complexity: O(V + E).
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	names := g.NodeNames()
	if len(names) == 0 {
		return true, nil
	}

	o := resolve(opts)
	// Undirected reachability from an arbitrary start node.
	visited := make(map[string]bool, len(names))
	queue := []string{names[0]}
	visited[names[0]] = true
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, nbr := range undirectedNeighbors(g, curr, o.WeightFunc) {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return len(visited) == len(names), nil
}
