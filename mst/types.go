package mst

import (
	"errors"
	"sort"

	"github.com/euriklis/grapho/core"
)

// Package sentinels.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mst: graph is nil")
)

// TreeEdge is one admitted undirected edge of the result.
type TreeEdge struct {
	From   string
	To     string
	Weight float64
}

// Tree is the outcome of a spanning-tree construction.
type Tree struct {
	Edges []TreeEdge
	Total float64
}

// Option configures Kruskal and Prim via functional arguments.
type Option func(*Options)

// Options holds the construction parameters.
type Options struct {
	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc

	// Root anchors Prim's growth. Empty means the smallest node name.
	// Kruskal ignores it.
	Root string
}

// WithWeightFunc sets the weight-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// WithRoot anchors Prim's growth at the named node.
func WithRoot(name string) Option {
	return func(o *Options) { o.Root = name }
}

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// flatten projects the stored directed edges onto canonical undirected
// pairs (From < To). When both directions are stored the first-seen weight
// wins; iteration over g.Edges() is sorted, so first-seen is deterministic.
// Edges whose derived weight is ≤ 0 are dropped.
func flatten(g *core.Graph, fn core.WeightFunc) []TreeEdge {
	seen := make(map[[2]string]struct{})
	var out []TreeEdge
	for _, e := range g.Edges() {
		w := e.Weight
		if fn != nil {
			w = fn(e.Weight, e.Data, g)
		}
		if w <= 0 || e.From == e.To {
			continue
		}
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		key := [2]string{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, TreeEdge{From: a, To: b, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
