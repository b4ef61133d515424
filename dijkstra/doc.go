// Package dijkstra computes single-pair shortest paths over a weighted
// core.Graph.
//
// The implementation is the dense O(V²) formulation: each round scans the
// unsettled frontier for the minimum tentative distance instead of keeping
// a priority queue. For the dense generated networks this library targets,
// the scan is competitive with a heap and its tie-breaking is trivially
// deterministic (ascending node name).
//
// Edge weights pass through the WeightFunc seam; a derived weight ≤ 0
// removes the edge from consideration, which also keeps every admissible
// weight strictly positive, the precondition Dijkstra needs.
// An unreachable target is a defined outcome reported through the found
// boolean, not an error; unknown endpoints are structural errors.
package dijkstra
