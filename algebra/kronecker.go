// Package algebra: Kronecker (tensor) product.

package algebra

import (
	"github.com/euriklis/grapho/core"
)

// defaultSeparator joins factor names in product node names.
const defaultSeparator = ":"

// Option configures Kronecker and AdjacencyMatrix via functional
// arguments.
type Option func(*Options)

// Options holds the operation parameters.
type Options struct {
	// Separator joins the factor node names of each product node.
	Separator string

	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc
}

// WithSeparator sets the product node-name separator.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		if sep != "" {
			o.Separator = sep
		}
	}
}

// WithWeightFunc sets the weight-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{Separator: defaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Kronecker builds the tensor product of a and b: one node per Cartesian
// pair, named by the joined factor names, and one edge per pair of factor
// edges, weighted by the product of the derived factor weights. The result
// is always a weighted network with order(a)·order(b) nodes and
// size(a)·size(b) edges (fewer when a WeightFunc excludes factor edges).
// Complexity: O(V(a)·V(b) + E(a)·E(b)).
func Kronecker(a, b *core.Graph, opts ...Option) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	out := core.NewNetwork()
	for _, na := range a.NodeNames() {
		for _, nb := range b.NodeNames() {
			if err := out.AddNode(na+o.Separator+nb, nil); err != nil {
				return nil, err
			}
		}
	}
	for _, ea := range a.Edges() {
		wa := derive(a, ea, o.WeightFunc)
		if wa <= 0 {
			continue
		}
		for _, eb := range b.Edges() {
			wb := derive(b, eb, o.WeightFunc)
			if wb <= 0 {
				continue
			}
			from := ea.From + o.Separator + eb.From
			to := ea.To + o.Separator + eb.To
			if _, err := out.AddEdge(from, to, nil, core.WithWeight(wa*wb)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// derive applies the weight seam to one stored edge.
func derive(g *core.Graph, e core.Edge, fn core.WeightFunc) float64 {
	if fn == nil {
		return e.Weight
	}

	return fn(e.Weight, e.Data, g)
}
