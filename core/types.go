// This file declares Node, Edge, Graph, their functional options,
// sentinel errors, and the New / NewNetwork constructors.

package core

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultEdgeWeight is the weight assigned to an edge when no explicit
// weight is provided on a weighted graph.
const DefaultEdgeWeight float64 = 1

// Sentinel errors for core container operations.
var (
	// ErrEmptyNodeName indicates an operation received an empty node name.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates AddNode was called with a name already in use.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates an edge for the (source, target) pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a custom weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Node represents a uniquely named graph entity with an opaque payload.
//
// Name is the key of this Node within its Graph and never changes after
// creation. Value carries the numeric node value of the weighted flavor;
// it stays zero on plain graphs. The adjacency maps are owned by the
// container and mutated only through Graph operations.
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	// Data stores an arbitrary user payload. It is shared, not deep-copied.
	Data any

	// Value is the numeric node value used by the weighted network layer.
	Value float64

	// out maps neighbor name → outgoing edge; in maps neighbor name → incoming edge.
	// Both are always updated together with the neighbor's mirror map.
	out map[string]*Edge
	in  map[string]*Edge
}

// Edge represents a directed connection between two nodes.
//
// ID is an opaque unique identity; structural lookups always go through the
// (From, To) pair, so ID plays no role in ordering or determinism.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source node name.
	From string

	// To is the target node name.
	To string

	// Data stores an arbitrary user payload.
	Data any

	// Weight is the stored edge weight. Defaults to DefaultEdgeWeight on
	// weighted graphs; algorithms reinterpret it through their weight
	// function seam.
	Weight float64
}

// NodeFactory creates the node instance stored by the container. It is the
// single polymorphism seam between graph flavors: the container invokes it
// for every AddNode and never constructs nodes any other way.
type NodeFactory func(name string, data any) *Node

// DefaultNodeFactory builds a plain node with empty adjacency.
func DefaultNodeFactory(name string, data any) *Node {
	return &Node{
		Name: name,
		Data: data,
		out:  make(map[string]*Edge),
		in:   make(map[string]*Edge),
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted marks the graph as weighted: custom edge weights are
// accepted and new edges default to DefaultEdgeWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithNodeFactory injects a custom node factory. Passing nil keeps the
// default factory.
func WithNodeFactory(fn NodeFactory) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.factory = fn
		}
	}
}

// WithState attaches an opaque container-wide state value, independent of
// any node or edge payload.
func WithState(state any) GraphOption {
	return func(g *Graph) { g.state = state }
}

// NodeOption configures properties of an individual node when added.
type NodeOption func(*Node)

// WithValue sets the numeric node value (weighted flavor).
func WithValue(v float64) NodeOption {
	return func(n *Node) { n.Value = v }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight overrides the default weight for this edge.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Graph is the core in-memory container: a keyed store of nodes and the
// directed edges between them, plus an optional opaque state value.
//
// The container exclusively owns every node and, transitively, every edge
// reachable through it. Removing a node removes all incident edges from
// both endpoints.
type Graph struct {
	// Configuration
	weighted bool        // accept custom edge weights
	factory  NodeFactory // node construction seam

	// Storage
	nodes map[string]*Node // node name → node
	edges map[string]*Edge // edge ID → edge

	// state is arbitrary container-wide metadata, orthogonal to payloads.
	state any
}

// New creates an empty Graph with the given options.
// By default the graph is unweighted and uses DefaultNodeFactory.
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		factory: DefaultNodeFactory,
		nodes:   make(map[string]*Node),
		edges:   make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewNetwork creates an empty weighted Graph. It prepends WithWeighted to
// the caller's options so every later assumption sees the weighted flag set;
// the caller's slice is never mutated.
// Complexity: O(len(opts)).
func NewNetwork(opts ...GraphOption) *Graph {
	weighted := make([]GraphOption, 0, len(opts)+1)
	weighted = append(weighted, WithWeighted())
	weighted = append(weighted, opts...)

	return New(weighted...)
}

// Weighted reports whether custom edge weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }

// State returns the opaque container-wide state value.
func (g *Graph) State() any { return g.state }

// SetState replaces the opaque container-wide state value.
func (g *Graph) SetState(state any) { g.state = state }

// NodeView is a detached (name, data, value) copy of a stored node.
// Mutating a view never affects the container.
type NodeView struct {
	Name  string
	Data  any
	Value float64
}

// newEdgeID mints an opaque unique edge identity.
func newEdgeID() string { return uuid.NewString() }
