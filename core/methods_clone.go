// Package core: cloning and clearing graph instances.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes but
// no edges. Node payloads and state are shared, not deep-copied.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := New(WithNodeFactory(g.factory))
	clone.weighted = g.weighted
	clone.state = g.state
	for name, n := range g.nodes {
		clone.nodes[name] = &Node{
			Name:  n.Name,
			Data:  n.Data,
			Value: n.Value,
			out:   make(map[string]*Edge, len(n.out)),
			in:    make(map[string]*Edge, len(n.in)),
		}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges, and
// adjacency. Edge IDs are preserved so a clone's edges stay correlatable
// with the original's.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for id, e := range g.edges {
		ne := &Edge{ID: id, From: e.From, To: e.To, Data: e.Data, Weight: e.Weight}
		clone.edges[id] = ne
		clone.nodes[e.From].out[e.To] = ne
		clone.nodes[e.To].in[e.From] = ne
	}

	return clone
}

// Clear removes every node and edge, preserving configuration flags, the
// node factory, and the container state.
// Complexity: O(1) amortized (old catalogs are released to the GC).
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
}
