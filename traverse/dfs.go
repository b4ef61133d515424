// Package traverse: depth-first search driver.
//
// DFS uses the explicit LIFO stack collaborator, never recursion, so the
// search depth is bounded by heap memory rather than the goroutine stack.
// Neighbors are pushed in ascending-name order; popping reverses that, so
// among siblings the traversal descends into the last-pushed branch first
// and each branch is exhausted before backtracking.

package traverse

import "github.com/euriklis/grapho/core"

// DFS runs depth-first search on g from the start node, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, a context
// error on cancellation, or nil. Visit-callback failures never abort the
// traversal; see the package contract.
// Complexity: O(V + E) plus hook cost.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	w := newWalker(g, opts)
	w.discover(start, "", 0)
	w.opts.Stack.Push(start)

	return w.res, w.dfsLoop()
}

// DFSAll runs depth-first search over the whole graph, restarting from the
// smallest unvisited node name of each remaining component.
// Complexity: O(V + E) plus hook cost.
func DFSAll(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	for _, root := range g.NodeNames() {
		if w.res.Visited[root] {
			continue
		}
		w.discover(root, "", 0)
		w.opts.Stack.Push(root)
		if err := w.dfsLoop(); err != nil {
			return w.res, err
		}
		if w.stopped {
			break
		}
	}

	return w.res, nil
}

// dfsLoop drains the stack, visiting each popped node and discovering its
// admissible neighbors. Discovery (and marking) happens at push time, so
// every node is processed exactly once.
func (w *walker) dfsLoop() error {
	for !w.opts.Stack.Empty() {
		if err := w.cancelled(); err != nil {
			return err
		}
		curr, ok := w.opts.Stack.Pop()
		if !ok {
			break
		}
		if w.visit(curr) {
			w.stopped = true

			return nil
		}
		nbrs, err := w.neighbors(curr)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if !w.res.Visited[nbr] {
				w.discover(nbr, curr, w.res.Depth[curr]+1)
				w.opts.Stack.Push(nbr)
			}
		}
	}

	return nil
}
