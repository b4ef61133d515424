// Package connectivity provides structural connectivity queries over a
// core.Graph: whole-graph connectivity, bridge finding (undirected and
// directed), and the bipartite test.
//
// IsConnected, Bridges and Bipartite operate on the undirected projection
// of the graph: they follow both outgoing and incoming adjacency, treating
// every edge as two-way. DirectedBridges honors edge direction.
//
// All queries accept WithWeightFunc: edges whose derived weight is ≤ 0 are
// treated as absent, so callers can soft-exclude edges without mutating
// the structure.
//
// Complexity notes: IsConnected and Bipartite are single traversals,
// O(V + E). Bridges is one depth-first pass computing discovery and
// low-link timestamps, O(V + E). DirectedBridges re-runs a reachability
// search per edge, O(E·(V+E)); adequate for library-scale graphs, not a
// production hot path.
package connectivity
