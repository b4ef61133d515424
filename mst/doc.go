// Package mst builds minimum spanning trees over the undirected projection
// of a weighted core.Graph.
//
// Two classic constructions are provided. Kruskal sorts the canonical
// undirected edge list ascending by weight and admits each edge that joins
// two distinct union-find components. Prim grows a tree outward from a
// root, repeatedly picking the cheapest frontier edge. On a connected
// input both produce spanning trees of equal total weight; ties in edge
// weights may yield different (equally minimal) trees.
//
// Directed storage is flattened first: an edge in either stored direction
// contributes one canonical undirected pair, the first-seen weight winning
// when both directions are stored. A disconnected input is a defined
// outcome, not an error: Kruskal returns the minimum spanning forest and
// Prim the tree of the root's component.
package mst
