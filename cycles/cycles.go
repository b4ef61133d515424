// Package cycles: simple-cycle enumeration.

package cycles

import (
	"sort"
	"strings"

	"github.com/euriklis/grapho/core"
)

const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // fully explored
)

// detector holds the depth-first state of one Detect run.
type detector struct {
	graph  *core.Graph
	opts   Options
	state  map[string]int
	path   []string       // current depth-first path
	index  map[string]int // node → position in path, for O(1) cycle cuts
	seen   map[string]struct{}
	cycles [][]string
}

// Detect inspects g for simple cycles. Returns (true, cycles, nil) when
// any are found and (false, nil, nil) when none are: a cycle-free graph is
// a defined outcome, not an error. Cycles are node sequences without the
// closing repetition, rotated to their lexicographically minimal form and
// sorted by signature for deterministic output.
// Complexity: O(V + E + C·L) for C reported cycles of average length L.
func Detect(g *core.Graph, opts ...Option) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	d := &detector{
		graph: g,
		opts:  resolve(opts),
		state: make(map[string]int, g.Order()),
		index: make(map[string]int, g.Order()),
		seen:  make(map[string]struct{}),
	}
	for _, root := range g.NodeNames() {
		if d.state[root] == white {
			if err := d.visit(root); err != nil {
				return false, nil, err
			}
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return signature(d.cycles[i]) < signature(d.cycles[j])
	})
	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	return true, d.cycles, nil
}

// visit runs the depth-first pass from u, recording every back edge into
// the recursion stack as one cycle.
func (d *detector) visit(u string) error {
	select {
	case <-d.opts.Ctx.Done():
		return d.opts.Ctx.Err()
	default:
	}

	d.state[u] = gray
	d.index[u] = len(d.path)
	d.path = append(d.path, u)

	for _, v := range neighbors(d.graph, u, d.opts.WeightFunc) {
		switch d.state[v] {
		case gray:
			// Back edge u→v: the path from v to u closes a cycle.
			d.record(d.path[d.index[v]:])
		case white:
			if err := d.visit(v); err != nil {
				return err
			}
		}
	}

	d.state[u] = black
	d.path = d.path[:len(d.path)-1]
	delete(d.index, u)

	return nil
}

// record canonicalizes the cycle to its minimal rotation and stores it if
// the signature is new.
func (d *detector) record(cycle []string) {
	canon := minimalRotation(cycle)
	sig := signature(canon)
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, canon)
}

// minimalRotation returns the lexicographically smallest rotation of the
// cycle. Cycles are short relative to the graph, so the quadratic scan is
// fine here.
func minimalRotation(cycle []string) []string {
	n := len(cycle)
	best := 0
	for candidate := 1; candidate < n; candidate++ {
		for k := 0; k < n; k++ {
			a := cycle[(candidate+k)%n]
			b := cycle[(best+k)%n]
			if a != b {
				if a < b {
					best = candidate
				}
				break
			}
		}
	}
	out := make([]string, n)
	for k := 0; k < n; k++ {
		out[k] = cycle[(best+k)%n]
	}

	return out
}

// signature joins a cycle into its dedupe key.
func signature(cycle []string) string { return strings.Join(cycle, ",") }
