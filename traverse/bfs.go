// Package traverse: breadth-first search driver.

package traverse

import "github.com/euriklis/grapho/core"

// BFS runs breadth-first search on g from the start node, applying any
// number of functional Options. Nodes are expanded in ascending-name order
// through the FIFO queue collaborator.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, a context
// error on cancellation, or nil. Visit-callback failures never abort the
// traversal; see the package contract.
// Complexity: O(V + E) plus hook cost.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	w := newWalker(g, opts)
	w.discover(start, "", 0)
	w.opts.Queue.Enqueue(start)

	return w.res, w.bfsLoop()
}

// BFSAll runs breadth-first search over the whole graph, restarting from
// the smallest unvisited node name of each remaining component.
// Complexity: O(V + E) plus hook cost.
func BFSAll(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	for _, root := range g.NodeNames() {
		if w.res.Visited[root] {
			continue
		}
		w.discover(root, "", 0)
		w.opts.Queue.Enqueue(root)
		if err := w.bfsLoop(); err != nil {
			return w.res, err
		}
		if w.stopped {
			break
		}
	}

	return w.res, nil
}

// bfsLoop drains the queue, visiting each dequeued node and discovering
// its admissible neighbors.
func (w *walker) bfsLoop() error {
	for !w.opts.Queue.Empty() {
		if err := w.cancelled(); err != nil {
			return err
		}
		curr, ok := w.opts.Queue.Dequeue()
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
				w.opts.Queue.Enqueue(nbr)
			}
		}
	}

	return nil
}
