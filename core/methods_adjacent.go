// Package core: adjacency queries.
//
// Out/in edge listings are returned as detached copies in deterministic
// (sorted) order so algorithm layers scanning them stay reproducible.

package core

import "sort"

// OutDegree returns the number of outgoing edges of the named node.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) OutDegree(name string) (int, error) {
	n, exists := g.nodes[name]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return len(n.out), nil
}

// InDegree returns the number of incoming edges of the named node.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) InDegree(name string) (int, error) {
	n, exists := g.nodes[name]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return len(n.in), nil
}

// OutEdges returns detached copies of the node's outgoing edges, sorted by
// target name.
// Complexity: O(deg log deg).
func (g *Graph) OutEdges(name string) ([]Edge, error) {
	n, exists := g.nodes[name]
	if !exists {
		return nil, ErrNodeNotFound
	}
	edges := make([]Edge, 0, len(n.out))
	for _, e := range n.out {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// InEdges returns detached copies of the node's incoming edges, sorted by
// source name.
// Complexity: O(deg log deg).
func (g *Graph) InEdges(name string) ([]Edge, error) {
	n, exists := g.nodes[name]
	if !exists {
		return nil, ErrNodeNotFound
	}
	edges := make([]Edge, 0, len(n.in))
	for _, e := range n.in {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].From < edges[j].From })

	return edges, nil
}

// Neighbors returns the names of nodes adjacent through outgoing edges,
// sorted ascending.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(name string) ([]string, error) {
	n, exists := g.nodes[name]
	if !exists {
		return nil, ErrNodeNotFound
	}
	nbrs := make([]string, 0, len(n.out))
	for to := range n.out {
		nbrs = append(nbrs, to)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// UndirectedNeighbors returns the names of nodes adjacent through either
// outgoing or incoming edges, deduplicated and sorted ascending. This is
// the undirected projection used by connectivity-style algorithms.
// Complexity: O(deg log deg).
func (g *Graph) UndirectedNeighbors(name string) ([]string, error) {
	n, exists := g.nodes[name]
	if !exists {
		return nil, ErrNodeNotFound
	}
	seen := make(map[string]struct{}, len(n.out)+len(n.in))
	for to := range n.out {
		seen[to] = struct{}{}
	}
	for from := range n.in {
		seen[from] = struct{}{}
	}
	nbrs := make([]string, 0, len(seen))
	for nbr := range seen {
		nbrs = append(nbrs, nbr)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// FindConnections returns detached copies of the node's outgoing edges for
// which pred returns true, sorted by target name. A nil predicate matches
// every edge.
// Complexity: O(deg log deg) plus predicate cost.
func (g *Graph) FindConnections(name string, pred func(Edge) bool) ([]Edge, error) {
	edges, err := g.OutEdges(name)
	if err != nil {
		return nil, err
	}
	if pred == nil {
		return edges, nil
	}
	matched := edges[:0]
	for _, e := range edges {
		if pred(e) {
			matched = append(matched, e)
		}
	}

	return matched, nil
}
