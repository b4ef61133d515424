// Package traverse: shared walker state for the BFS and DFS drivers.

package traverse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/euriklis/grapho/core"
)

// walker encapsulates mutable traversal state shared by BFS and DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result

	// stopped is set when a visit callback returned Stop; whole-graph
	// drivers use it to skip the remaining components.
	stopped bool
}

// newWalker resolves options and allocates the result collector.
func newWalker(g *core.Graph, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Order()

	return &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
}

// cancelled reports context cancellation; checked once per dequeued node.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// admissible reports whether an edge participates in the traversal under
// the active weight interpretation: derived weight ≤ 0 means absent.
func (w *walker) admissible(e core.Edge) bool {
	if w.opts.WeightFunc == nil {
		return true
	}

	return w.opts.WeightFunc(e.Weight, e.Data, w.graph) > 0
}

// neighbors returns the admissible neighbor names of curr, deduplicated and
// sorted for deterministic expansion. With Undirected set, incoming edges
// contribute their source endpoints as well.
func (w *walker) neighbors(curr string) ([]string, error) {
	out, err := w.graph.OutEdges(curr)
	if err != nil {
		return nil, fmt.Errorf("traverse: OutEdges(%q): %w", curr, err)
	}
	seen := make(map[string]struct{}, len(out))
	for _, e := range out {
		if w.admissible(e) {
			seen[e.To] = struct{}{}
		} else {
			w.res.Skipped++
		}
	}
	if w.opts.Undirected {
		in, err := w.graph.InEdges(curr)
		if err != nil {
			return nil, fmt.Errorf("traverse: InEdges(%q): %w", curr, err)
		}
		for _, e := range in {
			if w.admissible(e) {
				seen[e.From] = struct{}{}
			} else {
				w.res.Skipped++
			}
		}
	}
	nbrs := make([]string, 0, len(seen))
	for nbr := range seen {
		if w.opts.FilterNeighbor(curr, nbr) {
			nbrs = append(nbrs, nbr)
		} else {
			w.res.Skipped++
		}
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// discover marks name visited at first discovery and records its tree
// position. Discovery happens exactly once per node.
func (w *walker) discover(name, parent string, depth int) {
	w.res.Visited[name] = true
	w.res.Depth[name] = depth
	if parent != "" {
		w.res.Parent[name] = parent
	}
}

// visit records the node in Order and runs the visit callback. A callback
// error is contained: it is handed to OnError together with the container
// and the traversal continues. Returning Stop requests early termination,
// signalled through the boolean.
func (w *walker) visit(name string) (stop bool) {
	w.res.Order = append(w.res.Order, name)
	if err := w.opts.OnVisit(name); err != nil {
		if errors.Is(err, Stop) {
			return true
		}
		w.opts.OnError(name, err, w.graph)
	}

	return false
}
