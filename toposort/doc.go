// Package toposort provides Kahn's topological ordering over a core.Graph.
//
// Sort repeatedly removes zero-in-degree nodes through a FIFO queue,
// decrementing the in-degrees of their successors. If any node is left
// unprocessed a cycle is present; that is a defined "no order exists"
// outcome reported through the boolean, never an error.
//
// The queue is the same minimal FIFO collaborator interface the traversal
// drivers consume (traverse.Queue) and is substitutable via WithQueue.
// WithWeightFunc soft-excludes edges whose derived weight is ≤ 0, so a
// cyclic network can still be ordered once the offending edges are
// excluded algorithmically.
package toposort
