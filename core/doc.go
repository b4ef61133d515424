// Package core defines the central Graph, Node, and Edge types and the
// container operations for building, querying, snapshotting, and cloning
// directed graphs.
//
// One CRUD engine serves every graph flavor. The flavor seam is an injected
// NodeFactory plus the WithWeighted policy flag: the plain layer and the
// weighted network layer share identical container logic and differ only in
// what kind of node gets instantiated and how algorithms interpret edge
// weights. Nodes and edges are created exclusively through container
// operations; there is no external construction path.
//
// Adjacency bookkeeping is symmetric by construction: an edge from u to v is
// registered in u's outgoing map and v's incoming map in the same operation,
// and removed from both in the same operation. Edges reference their
// endpoints by node name, never by pointer, so no reference cycles exist
// between entities.
//
// The container is single-threaded by contract: all operations are
// synchronous and no internal locking is performed. Mutating a graph while a
// traversal over it is in flight is undefined behavior and must be avoided
// by the caller.
//
// Errors:
//
//	ErrEmptyNodeName  - node name is the empty string.
//	ErrDuplicateNode  - a node with that name already exists.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrDuplicateEdge  - an edge for that (source, target) pair already exists.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - a custom weight was supplied to an unweighted graph.
package core
