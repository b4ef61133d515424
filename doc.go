// Package grapho is an in-memory toolkit for building, exploring and
// analyzing directed graphs and weighted networks.
//
// Everything is organized under flat subpackages:
//
//	core/         — Graph container, Node & Edge entities, snapshots, cloning
//	traverse/     — BFS and DFS drivers with hooks, filters and cancellation
//	connectivity/ — connectivity test, Tarjan bridges, directed bridges, bipartite test
//	cycles/       — simple-cycle enumeration and Hamiltonian search
//	toposort/     — Kahn topological ordering
//	dijkstra/     — single-pair shortest path (linear-scan Dijkstra)
//	mst/          — Kruskal and Prim minimum spanning trees
//	pert/         — PERT earliest-occurrence times and critical-path method
//	algebra/      — subgraph, union, difference, tensor product, adjacency matrix
//	builder/      — deterministic random & structured network generators
//	classify/     — heuristic topology classifiers and graph statistics
//
// The core container is a keyed store of uniquely named nodes connected by
// directed edges. One CRUD engine serves every flavor: the weighted network
// layer differs only in the node factory it injects and the weight
// interpretation it passes to algorithms. Algorithms read the container
// through its public operations only and report "no result" outcomes
// (unreachable target, cyclic input, no Hamiltonian cycle) as plain
// values, never as errors.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square with four nodes and four (pairs of) directed edges.
//
//	go get github.com/euriklis/grapho
package grapho
