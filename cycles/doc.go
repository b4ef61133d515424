// Package cycles provides simple-cycle enumeration and Hamiltonian-cycle
// search over a core.Graph.
//
// Detect walks the directed graph depth-first with a recursion-stack
// marker set; every back edge closes a cycle, which is canonicalized to
// its minimal rotation and deduplicated by path signature, so rotations of
// one cycle are reported once. The enumeration is best-effort: densely
// overlapping cycle families are not exhaustively listed.
//
// Hamiltonian searches for a cycle visiting every node exactly once by
// exhaustive backtracking bounded by the graph order. The worst case is
// exponential; the search is an explicitly best-effort utility, and a
// cancellation context is the caller's lever for bounding it in practice.
//
// Both operations accept WithWeightFunc: edges whose derived weight is ≤ 0
// are treated as absent. "No cycle found" is a defined outcome, never an
// error.
package cycles
