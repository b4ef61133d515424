// Package pert: forward pass and critical path.

package pert

import (
	"errors"

	"github.com/euriklis/grapho/core"
	"github.com/euriklis/grapho/toposort"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("pert: graph is nil")

// Option configures PERT and CPM via functional arguments.
type Option func(*Options)

// Options holds the scheduling parameters.
type Options struct {
	// WeightFunc derives activity durations; activities deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc
}

// WithWeightFunc sets the duration-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// Schedule is the outcome of a CPM run.
type Schedule struct {
	// Duration is the earliest finish of the whole project.
	Duration float64

	// Path lists the critical milestones in activity order.
	Path []string
}

// PERT computes the earliest occurrence time of every milestone. Sources
// sit at 0 and every other milestone at the maximum over its incoming
// activities of predecessor time plus duration. A cyclic network has no
// schedule; that is reported as (nil, false, nil), not an error.
// Complexity: O(V + E).
func PERT(g *core.Graph, opts ...Option) (map[string]float64, bool, error) {
	earliest, _, ok, err := forward(g, opts)
	if err != nil || !ok {
		return nil, false, err
	}

	return earliest, true, nil
}

// CPM computes the project duration and its critical path, the milestone
// chain realizing the maximum earliest time. Ties resolve toward the
// smallest milestone name. Cyclic networks report ok=false.
func CPM(g *core.Graph, opts ...Option) (Schedule, bool, error) {
	earliest, argmax, ok, err := forward(g, opts)
	if err != nil || !ok {
		return Schedule{}, false, err
	}

	var s Schedule
	sink := ""
	for _, name := range g.NodeNames() {
		if sink == "" || earliest[name] > s.Duration {
			sink, s.Duration = name, earliest[name]
		}
	}
	if sink == "" {
		return Schedule{}, true, nil
	}

	// Read the critical chain back through the argmax links.
	for curr := sink; curr != ""; curr = argmax[curr] {
		s.Path = append(s.Path, curr)
	}
	for i, j := 0, len(s.Path)-1; i < j; i, j = i+1, j-1 {
		s.Path[i], s.Path[j] = s.Path[j], s.Path[i]
	}

	return s, true, nil
}

// forward runs the shared forward pass in topological order, returning the
// earliest times and the argmax predecessor of each milestone.
func forward(g *core.Graph, opts []Option) (map[string]float64, map[string]string, bool, error) {
	if g == nil {
		return nil, nil, false, ErrGraphNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	order, ok, err := toposort.Sort(g, toposort.WithWeightFunc(o.WeightFunc))
	if err != nil {
		return nil, nil, false, err
	}
	if !ok {
		return nil, nil, false, nil
	}

	earliest := make(map[string]float64, len(order))
	argmax := make(map[string]string, len(order))
	for _, name := range order {
		earliest[name] = 0
	}
	for _, u := range order {
		out, err := g.OutEdges(u)
		if err != nil {
			return nil, nil, false, err
		}
		for _, e := range out {
			d := e.Weight
			if o.WeightFunc != nil {
				d = o.WeightFunc(e.Weight, e.Data, g)
			}
			if d <= 0 {
				continue
			}
			if cand := earliest[u] + d; cand > earliest[e.To] {
				earliest[e.To] = cand
				argmax[e.To] = u
			}
		}
	}

	return earliest, argmax, true, nil
}
