// Package traverse: options, sentinel errors, collaborator seams, results.

package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/euriklis/grapho/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// Stop is the early-termination sentinel. Returned from OnVisit it stops
	// the driver cleanly: the traversal ends with the result collected so
	// far and a nil error.
	Stop = errors.New("traverse: stop")
)

// Queue is the minimal FIFO collaborator interface consumed by BFS.
// Any conforming implementation is substitutable via WithQueue.
type Queue interface {
	Enqueue(name string)
	Dequeue() (string, bool)
	Empty() bool
}

// Stack is the minimal LIFO collaborator interface consumed by DFS.
// Any conforming implementation is substitutable via WithStack.
type Stack interface {
	Push(name string)
	Pop() (string, bool)
	Empty() bool
}

// sliceQueue is the default slice-backed FIFO.
type sliceQueue struct{ items []string }

func (q *sliceQueue) Enqueue(name string) { q.items = append(q.items, name) }

func (q *sliceQueue) Dequeue() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	head := q.items[0]
	q.items = q.items[1:]

	return head, true
}

func (q *sliceQueue) Empty() bool { return len(q.items) == 0 }

// sliceStack is the default slice-backed LIFO.
type sliceStack struct{ items []string }

func (s *sliceStack) Push(name string) { s.items = append(s.items, name) }

func (s *sliceStack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return top, true
}

func (s *sliceStack) Empty() bool { return len(s.items) == 0 }

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued node.
	Ctx context.Context

	// OnVisit is called when a node is visited. A returned error is routed
	// to OnError and the traversal continues; returning Stop terminates the
	// traversal early with no error.
	OnVisit func(name string) error

	// OnError receives per-node visit failures together with the container.
	// It is never called for structural errors, which abort the traversal.
	OnError func(name string, err error, g *core.Graph)

	// FilterNeighbor can skip edges by returning false.
	// Called for each discovered edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Undirected follows incoming adjacency as well as outgoing, yielding
	// the undirected projection of the graph.
	Undirected bool

	// WeightFunc derives effective edge weights; edges deriving ≤ 0 are
	// treated as absent. Nil means the stored weight is used as-is.
	WeightFunc core.WeightFunc

	// Queue and Stack are the traversal collaborators. Defaults are
	// slice-backed.
	Queue Queue
	Stack Stack
}

// DefaultOptions returns Options with background context, no-op hooks,
// no filtering, directed adjacency, and slice-backed collaborators.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string) error { return nil },
		OnError:        func(string, error, *core.Graph) {},
		FilterNeighbor: func(_, _ string) bool { return true },
		Queue:          &sliceQueue{},
		Stack:          &sliceStack{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the per-node visit callback.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnError registers the per-node error callback.
func WithOnError(fn func(name string, err error, g *core.Graph)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnError = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirected follows both outgoing and incoming adjacency.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// WithWeightFunc sets the weight-interpretation seam; edges whose derived
// weight is ≤ 0 are skipped as if absent.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// WithQueue substitutes the FIFO collaborator used by BFS.
func WithQueue(q Queue) Option {
	return func(o *Options) {
		if q != nil {
			o.Queue = q
		}
	}
}

// WithStack substitutes the LIFO collaborator used by DFS.
func WithStack(s Stack) Option {
	return func(o *Options) {
		if s != nil {
			o.Stack = s
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node name → distance (in edges) from its discovery root.
//   - Parent: node name → predecessor in the traversal tree.
//   - Visited: discovery set, useful for component queries.
//   - Skipped: neighbor links dropped by the filter or the weight seam,
//     a cheap diagnostic for how much of the graph the options hid.
type Result struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Visited map[string]bool
	Skipped int
}

// PathTo reconstructs the discovery-tree path from the root to dest.
// Returns an error if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Visited[dest] {
		return nil, fmt.Errorf("traverse: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
