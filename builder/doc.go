// Package builder generates canonical random and structured networks.
//
// Topologies are expressed as Constructor closures applied in order by the
// single orchestrator Build, which creates the graph, resolves the builder
// configuration, and runs each constructor against both. Constructors
// validate early, return sentinel errors, and never panic.
//
// Determinism is the core contract: the same graph options, builder
// options, seed, and constructor order always produce the identical
// graph. Stochastic constructors (ErdosRenyi, WattsStrogatz,
// BarabasiAlbert, StochasticBlock, LatentSpace) require an explicit
// random source via WithSeed or WithRand and fail with ErrNeedRandSource
// without one; there is no ambient randomness anywhere in the package.
//
// Undirected topologies are materialized as symmetric directed edge
// pairs, matching the adjacency model of core.Graph.
package builder
