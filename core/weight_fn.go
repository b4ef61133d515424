// Package core: the pluggable weight-interpretation seam.
//
// Every weighted algorithm reads edge weights through a WeightFunc instead
// of touching Edge.Weight directly. Callers override it to reinterpret
// payloads as weights or to exclude edges algorithmically (return a value
// ≤ 0) without mutating the structure.

package core

// WeightFunc derives the effective weight of an edge from its stored
// weight, its payload, and the owning graph. A derived weight ≤ 0 makes
// algorithms treat the edge as absent.
type WeightFunc func(stored float64, data any, g *Graph) float64

// DefaultWeightFunc returns the stored weight unchanged.
func DefaultWeightFunc(stored float64, _ any, _ *Graph) float64 { return stored }
