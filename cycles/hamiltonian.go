// Package cycles: Hamiltonian-cycle search.

package cycles

import "github.com/euriklis/grapho/core"

// hamiltonianSearch holds the backtracking state of one run.
type hamiltonianSearch struct {
	graph *core.Graph
	opts  Options
	order int
	start string
	path  []string
	used  map[string]bool
}

// Hamiltonian searches for a cycle visiting every node exactly once and
// returning to its start. On success it returns the cycle as an
// order+1-element sequence whose last element repeats the first, with
// found=true. "No Hamiltonian cycle" is a defined outcome: (nil, false,
// nil). The search is exhaustive backtracking, exponential in the worst
// case; cancel through WithContext to bound it.
func Hamiltonian(g *core.Graph, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	names := g.NodeNames()
	if len(names) == 0 {
		return nil, false, nil
	}

	// Any Hamiltonian cycle passes through every node, so the start may be
	// fixed to the smallest name without losing solutions.
	s := &hamiltonianSearch{
		graph: g,
		opts:  resolve(opts),
		order: len(names),
		start: names[0],
		path:  make([]string, 0, len(names)+1),
		used:  make(map[string]bool, len(names)),
	}
	s.path = append(s.path, s.start)
	s.used[s.start] = true

	found, err := s.extend(s.start)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return s.path, true, nil
}

// extend tries to grow the partial path from curr, backtracking on dead
// ends. When every node is on the path it attempts to close the cycle.
func (s *hamiltonianSearch) extend(curr string) (bool, error) {
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	if len(s.path) == s.order {
		// Close the cycle back to the start if that edge exists.
		for _, v := range neighbors(s.graph, curr, s.opts.WeightFunc) {
			if v == s.start {
				s.path = append(s.path, s.start)

				return true, nil
			}
		}

		return false, nil
	}

	for _, v := range neighbors(s.graph, curr, s.opts.WeightFunc) {
		if s.used[v] {
			continue
		}
		s.path = append(s.path, v)
		s.used[v] = true
		found, err := s.extend(v)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
		s.path = s.path[:len(s.path)-1]
		s.used[v] = false
	}

	return false, nil
}
