// Package cycles: options and sentinel errors.

package cycles

import (
	"context"
	"errors"

	"github.com/euriklis/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("cycles: graph is nil")

// Option configures cycle queries via functional arguments.
type Option func(*Options)

// Options holds parameters shared by Detect and Hamiltonian.
type Options struct {
	// Ctx allows cancellation of long-running searches.
	Ctx context.Context

	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc
}

// DefaultOptions returns Options with background context and no weight
// reinterpretation.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
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

// resolve applies opts over defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// neighbors lists the admissible directed neighbors of name, sorted.
func neighbors(g *core.Graph, name string, fn core.WeightFunc) []string {
	out, err := g.OutEdges(name)
	if err != nil {
		return nil
	}
	nbrs := make([]string, 0, len(out))
	for _, e := range out {
		if fn == nil || fn(e.Weight, e.Data, g) > 0 {
			nbrs = append(nbrs, e.To)
		}
	}

	return nbrs
}
