// Package connectivity: options and sentinel errors.

package connectivity

import (
	"errors"
	"sort"

	"github.com/euriklis/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// Bridge identifies one bridge by its existing directed instance: the
// (From, To) orientation actually stored in the container, resolved
// source→target first, then target→source.
type Bridge struct {
	From string
	To   string
}

// Option configures connectivity queries via functional arguments.
type Option func(*Options)

// Options holds the parameters shared by the connectivity queries.
type Options struct {
	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc
}

// DefaultOptions returns Options with no weight reinterpretation.
func DefaultOptions() Options { return Options{} }

// WithWeightFunc sets the weight-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// resolve applies opts over defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// admissible reports whether an edge participates under the active weight
// interpretation.
func admissible(g *core.Graph, e core.Edge, fn core.WeightFunc) bool {
	if fn == nil {
		return true
	}

	return fn(e.Weight, e.Data, g) > 0
}

// undirectedNeighbors lists the admissible neighbors of name over the
// undirected projection, deduplicated and sorted.
func undirectedNeighbors(g *core.Graph, name string, fn core.WeightFunc) []string {
	seen := make(map[string]struct{})
	if out, err := g.OutEdges(name); err == nil {
		for _, e := range out {
			if admissible(g, e, fn) {
				seen[e.To] = struct{}{}
			}
		}
	}
	if in, err := g.InEdges(name); err == nil {
		for _, e := range in {
			if admissible(g, e, fn) {
				seen[e.From] = struct{}{}
			}
		}
	}
	nbrs := make([]string, 0, len(seen))
	for nbr := range seen {
		nbrs = append(nbrs, nbr)
	}
	sort.Strings(nbrs)

	return nbrs
}
