// Package toposort: Kahn's algorithm.

package toposort

import (
	"errors"

	"github.com/euriklis/grapho/core"
	"github.com/euriklis/grapho/traverse"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("toposort: graph is nil")

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds the Sort parameters.
type Options struct {
	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc

	// Queue is the FIFO collaborator; defaults to a slice-backed queue.
	Queue traverse.Queue
}

// WithWeightFunc sets the weight-interpretation seam.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// WithQueue substitutes the FIFO collaborator.
func WithQueue(q traverse.Queue) Option {
	return func(o *Options) {
		if q != nil {
			o.Queue = q
		}
	}
}

// fifo is the default slice-backed queue.
type fifo struct{ items []string }

func (q *fifo) Enqueue(name string) { q.items = append(q.items, name) }

func (q *fifo) Dequeue() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	head := q.items[0]
	q.items = q.items[1:]

	return head, true
}

func (q *fifo) Empty() bool { return len(q.items) == 0 }

// Sort computes a topological ordering of g. For every admissible edge
// u→v, u appears before v in the returned order. The boolean is false when
// a cycle leaves nodes unprocessed; no order exists then, and that is not
// an error. Nodes with equal rank come out in ascending-name seed order.
// Complexity: O(V + E).
func Sort(g *core.Graph, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	o := Options{Queue: &fifo{}}
	for _, opt := range opts {
		opt(&o)
	}

	names := g.NodeNames()
	// In-degrees over admissible edges only.
	indeg := make(map[string]int, len(names))
	for _, name := range names {
		indeg[name] = 0
	}
	for _, name := range names {
		for _, v := range successors(g, name, o.WeightFunc) {
			indeg[v]++
		}
	}

	// Seed with every source, in ascending-name order.
	for _, name := range names {
		if indeg[name] == 0 {
			o.Queue.Enqueue(name)
		}
	}

	order := make([]string, 0, len(names))
	for !o.Queue.Empty() {
		curr, ok := o.Queue.Dequeue()
		if !ok {
			break
		}
		order = append(order, curr)
		for _, v := range successors(g, curr, o.WeightFunc) {
			indeg[v]--
			if indeg[v] == 0 {
				o.Queue.Enqueue(v)
			}
		}
	}

	// Unprocessed nodes mean a cycle: a defined no-order outcome.
	if len(order) != len(names) {
		return nil, false, nil
	}

	return order, true, nil
}

// successors lists the admissible directed neighbors of name, sorted.
func successors(g *core.Graph, name string, fn core.WeightFunc) []string {
	out, err := g.OutEdges(name)
	if err != nil {
		return nil
	}
	succ := make([]string, 0, len(out))
	for _, e := range out {
		if fn == nil || fn(e.Weight, e.Data, g) > 0 {
			succ = append(succ, e.To)
		}
	}

	return succ
}
