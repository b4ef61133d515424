// Package dijkstra: dense single-pair shortest path.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/euriklis/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dijkstra: graph is nil")

// Option configures ShortestPath via functional arguments.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc
}

// WithWeightFunc sets the weight-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// ShortestPath finds the minimum-total-weight directed path from source to
// target. On success it returns the node sequence source..target and its
// total weight with found=true. An unreachable target yields (nil, +Inf,
// false, nil). Unknown endpoints return core.ErrNodeNotFound wrapped with
// the offending name.
// Complexity: O(V²) via linear minimum scans.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, float64, bool, error) {
	if g == nil {
		return nil, 0, false, ErrGraphNil
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(source) {
		return nil, 0, false, fmt.Errorf("dijkstra: source %q: %w", source, core.ErrNodeNotFound)
	}
	if !g.HasNode(target) {
		return nil, 0, false, fmt.Errorf("dijkstra: target %q: %w", target, core.ErrNodeNotFound)
	}

	names := g.NodeNames()
	dist := make(map[string]float64, len(names))
	prev := make(map[string]string, len(names))
	settled := make(map[string]bool, len(names))
	for _, name := range names {
		dist[name] = math.Inf(1)
	}
	dist[source] = 0

	for range names {
		// Linear scan for the nearest unsettled node; names is sorted, so
		// equal distances resolve to the ascending name.
		curr, best := "", math.Inf(1)
		for _, name := range names {
			if !settled[name] && dist[name] < best {
				curr, best = name, dist[name]
			}
		}
		if curr == "" {
			break // remaining nodes are unreachable
		}
		settled[curr] = true
		if curr == target {
			break
		}

		out, err := g.OutEdges(curr)
		if err != nil {
			return nil, 0, false, err
		}
		for _, e := range out {
			w := e.Weight
			if o.WeightFunc != nil {
				w = o.WeightFunc(e.Weight, e.Data, g)
			}
			if w <= 0 || settled[e.To] {
				continue
			}
			if cand := dist[curr] + w; cand < dist[e.To] {
				dist[e.To] = cand
				prev[e.To] = curr
			}
		}
	}

	if math.IsInf(dist[target], 1) {
		return nil, math.Inf(1), false, nil
	}

	// Walk the predecessor chain back from the target.
	path := []string{target}
	for curr := target; curr != source; {
		curr = prev[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], true, nil
}
