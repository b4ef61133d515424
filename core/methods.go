// Package core: Graph mutation and lookup operations.
//
// This file provides the container CRUD surface: node insertion and removal,
// edge insertion and removal, and keyed lookups. Adjacency is stored on the
// nodes themselves (out/in maps keyed by neighbor name), which gives O(1)
// duplicate checks and O(deg) incident-edge removal.

package core

import "sort"

// AddNode inserts a new node with the given name and payload.
// Returns ErrEmptyNodeName if name is empty and ErrDuplicateNode if the
// name is already taken. The node instance is produced by the injected
// NodeFactory; options are applied afterwards.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, data any, opts ...NodeOption) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	if _, exists := g.nodes[name]; exists {
		return ErrDuplicateNode
	}

	// Construct through the factory seam; flavor-specific setup happens there.
	n := g.factory(name, data)
	// Defensive: a custom factory may leave adjacency nil.
	if n.out == nil {
		n.out = make(map[string]*Edge)
	}
	if n.in == nil {
		n.in = make(map[string]*Edge)
	}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[name] = n

	return nil
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, exists := g.nodes[name]

	return exists
}

// GetNode returns a detached (name, data, value) view of the named node.
// The second return is false when the node does not exist.
// Complexity: O(1).
func (g *Graph) GetNode(name string) (NodeView, bool) {
	n, exists := g.nodes[name]
	if !exists {
		return NodeView{}, false
	}

	return NodeView{Name: n.Name, Data: n.Data, Value: n.Value}, true
}

// NodeInstance returns the live stored node for read access.
// The adjacency maps stay private; callers reach them through Graph methods.
// Complexity: O(1).
func (g *Graph) NodeInstance(name string) (*Node, bool) {
	n, exists := g.nodes[name]

	return n, exists
}

// RemoveNode deletes the named node and every edge incident to it, from
// both endpoints. Returns the removed node's view, or ErrNodeNotFound.
// Complexity: O(inDegree + outDegree).
func (g *Graph) RemoveNode(name string) (NodeView, error) {
	n, exists := g.nodes[name]
	if !exists {
		return NodeView{}, ErrNodeNotFound
	}

	// Detach outgoing edges: each lives in a neighbor's incoming map too.
	for to, e := range n.out {
		if nbr, ok := g.nodes[to]; ok {
			delete(nbr.in, name)
		}
		delete(g.edges, e.ID)
	}
	// Detach incoming edges: each lives in a neighbor's outgoing map too.
	for from, e := range n.in {
		if nbr, ok := g.nodes[from]; ok {
			delete(nbr.out, name)
		}
		delete(g.edges, e.ID)
	}

	delete(g.nodes, name)

	return NodeView{Name: n.Name, Data: n.Data, Value: n.Value}, nil
}

// AddEdge creates a directed edge from source to target carrying the given
// payload, and registers it in the source's outgoing map and the target's
// incoming map in the same operation.
//
// Returns ErrNodeNotFound if either endpoint is missing, ErrDuplicateEdge
// if an edge for the ordered pair already exists, and ErrBadWeight if a
// custom weight is supplied on an unweighted graph. On success the new
// edge's ID is returned.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, data any, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeName
	}
	src, exists := g.nodes[from]
	if !exists {
		return "", ErrNodeNotFound
	}
	dst, exists := g.nodes[to]
	if !exists {
		return "", ErrNodeNotFound
	}
	if _, dup := src.out[to]; dup {
		return "", ErrDuplicateEdge
	}

	e := &Edge{ID: newEdgeID(), From: from, To: to, Data: data, Weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(e)
	}
	// Weight policy: custom weights require the weighted flag.
	if !g.weighted && e.Weight != DefaultEdgeWeight {
		return "", ErrBadWeight
	}

	// Mirror registration: both endpoint maps in one operation, never apart.
	src.out[to] = e
	dst.in[from] = e
	g.edges[e.ID] = e

	return e.ID, nil
}

// HasEdge reports whether a directed edge from source to target exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	src, exists := g.nodes[from]
	if !exists {
		return false
	}
	_, exists = src.out[to]

	return exists
}

// Connection returns a detached copy of the edge from source to target.
// The second return is false when no such edge exists.
// Complexity: O(1).
func (g *Graph) Connection(from, to string) (Edge, bool) {
	src, exists := g.nodes[from]
	if !exists {
		return Edge{}, false
	}
	e, exists := src.out[to]
	if !exists {
		return Edge{}, false
	}

	return *e, true
}

// RemoveEdge deletes the directed edge from source to target, detaching it
// from both endpoint maps atomically.
// Returns ErrNodeNotFound if an endpoint is missing, ErrEdgeNotFound if
// the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	src, exists := g.nodes[from]
	if !exists {
		return ErrNodeNotFound
	}
	dst, exists := g.nodes[to]
	if !exists {
		return ErrNodeNotFound
	}
	e, exists := src.out[to]
	if !exists {
		return ErrEdgeNotFound
	}

	delete(src.out, to)
	delete(dst.in, from)
	delete(g.edges, e.ID)

	return nil
}

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// NodeNames returns all node names in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeNames() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Nodes returns detached views of all nodes, sorted by name.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeView {
	views := make([]NodeView, 0, len(g.nodes))
	for _, name := range g.NodeNames() {
		n := g.nodes[name]
		views = append(views, NodeView{Name: n.Name, Data: n.Data, Value: n.Value})
	}

	return views
}

// Edges returns detached copies of all edges, sorted by (From, To).
// No live internal handles are exposed.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}
