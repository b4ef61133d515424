// Package algebra: graph combination and projection.

package algebra

import (
	"errors"
	"fmt"

	"github.com/euriklis/grapho/core"
)

// Package sentinels.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("algebra: graph is nil")

	// ErrNilPredicate is returned if Subgraph is given a nil predicate.
	ErrNilPredicate = errors.New("algebra: predicate is nil")
)

// Subgraph returns the subgraph of g induced by the nodes satisfying pred:
// those nodes plus exactly the edges whose both endpoints survive. g is
// left untouched.
// Complexity: O(V + E).
func Subgraph(g *core.Graph, pred func(core.NodeView) bool) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}

	out := g.Clone()
	for _, n := range g.Nodes() {
		if pred(n) {
			continue
		}
		// Removal detaches every incident edge, which is exactly the
		// induced-subgraph contract.
		if _, err := out.RemoveNode(n.Name); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Union merges b into a clone of a: nodes and edges of b that a lacks are
// added, existing ones are skipped (a's payloads and weights win).
// Complexity: O(V(a)+E(a) + V(b)+E(b)).
func Union(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrGraphNil
	}

	out := a.Clone()
	for _, n := range b.Nodes() {
		if out.HasNode(n.Name) {
			continue
		}
		if err := out.AddNode(n.Name, n.Data, core.WithValue(n.Value)); err != nil {
			return nil, err
		}
	}
	for _, e := range b.Edges() {
		if out.HasEdge(e.From, e.To) {
			continue
		}
		if _, err := out.AddEdge(e.From, e.To, e.Data, core.WithWeight(e.Weight)); err != nil {
			return nil, fmt.Errorf("algebra: union edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return out, nil
}

// Difference removes b's edges and nodes from a clone of a. Edges go
// first; removing a shared node then detaches whatever edges of a still
// touch it. Nodes and edges of b absent from a are ignored.
// Complexity: O(V(a)+E(a) + V(b)+E(b)).
func Difference(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrGraphNil
	}

	out := a.Clone()
	for _, e := range b.Edges() {
		if out.HasEdge(e.From, e.To) {
			if err := out.RemoveEdge(e.From, e.To); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range b.Nodes() {
		if out.HasNode(n.Name) {
			if _, err := out.RemoveNode(n.Name); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
