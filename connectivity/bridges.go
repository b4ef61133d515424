// Package connectivity: bridge finding.
//
// Bridges runs the Tarjan discovery-time/low-link algorithm over the
// undirected projection. DirectedBridges falls back to per-edge exclusion
// reachability, which is quadratic-ish but honors direction exactly.

package connectivity

import "github.com/euriklis/grapho/core"

// bridgeFinder holds the depth-first state of one Bridges run.
type bridgeFinder struct {
	graph   *core.Graph
	fn      core.WeightFunc
	timer   int
	disc    map[string]int
	low     map[string]int
	bridges []Bridge
}

// Bridges finds every bridge of the undirected projection: an edge whose
// removal increases the number of connected components. Each bridge is
// reported exactly once, as its stored directed instance (source→target
// checked first, then target→source). Output order follows the
// depth-first discovery order from ascending root names.
// Complexity: O(V + E).
func Bridges(g *core.Graph, opts ...Option) ([]Bridge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	f := &bridgeFinder{
		graph: g,
		fn:    o.WeightFunc,
		disc:  make(map[string]int, g.Order()),
		low:   make(map[string]int, g.Order()),
	}
	for _, root := range g.NodeNames() {
		if _, seen := f.disc[root]; !seen {
			f.dive(root, "")
		}
	}

	return f.bridges, nil
}

// dive performs the recursive low-link pass from u, skipping the tree edge
// back to parent. The undirected projection carries no parallel edges (the
// container forbids duplicate ordered pairs, and an opposite directed pair
// projects onto the same undirected edge), so a single parent skip is safe.
func (f *bridgeFinder) dive(u, parent string) {
	f.disc[u] = f.timer
	f.low[u] = f.timer
	f.timer++

	for _, v := range undirectedNeighbors(f.graph, u, f.fn) {
		if v == parent {
			continue
		}
		if _, seen := f.disc[v]; !seen {
			f.dive(v, u)
			if f.low[v] < f.low[u] {
				f.low[u] = f.low[v]
			}
			// No back-edge from v's subtree reaches u or above: cutting
			// (u,v) separates the subtree.
			if f.low[v] > f.disc[u] {
				f.bridges = append(f.bridges, f.orient(u, v))
			}
		} else if f.disc[v] < f.low[u] {
			f.low[u] = f.disc[v]
		}
	}
}

// orient resolves which directed instance of the undirected bridge exists.
func (f *bridgeFinder) orient(u, v string) Bridge {
	if f.graph.HasEdge(u, v) {
		return Bridge{From: u, To: v}
	}

	return Bridge{From: v, To: u}
}

// DirectedBridges finds every directed edge (u, v) whose removal makes v
// unreachable from u. For each admissible edge the search re-runs a
// directed reachability pass from u with that single edge excluded.
// Output follows the container's sorted edge order.
// Complexity: O(E·(V+E)).
func DirectedBridges(g *core.Graph, opts ...Option) ([]Bridge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	var bridges []Bridge
	for _, e := range g.Edges() {
		if !admissible(g, e, o.WeightFunc) {
			continue
		}
		if !reachableWithout(g, e.From, e.To, e, o.WeightFunc) {
			bridges = append(bridges, Bridge{From: e.From, To: e.To})
		}
	}

	return bridges, nil
}

// reachableWithout reports whether target is reachable from start over
// directed admissible edges when the excluded edge is ignored.
func reachableWithout(g *core.Graph, start, target string, excluded core.Edge, fn core.WeightFunc) bool {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		out, err := g.OutEdges(curr)
		if err != nil {
			continue
		}
		for _, e := range out {
			if e.From == excluded.From && e.To == excluded.To {
				continue
			}
			if !admissible(g, e, fn) {
				continue
			}
			if e.To == target {
				return true
			}
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
