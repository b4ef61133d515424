// Package mst: Kruskal's construction.

package mst

import (
	"sort"

	"github.com/euriklis/grapho/core"
)

// unionFind is a disjoint-set forest with path compression and union by
// rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(names []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(names)),
		rank:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		uf.parent[name] = name
	}

	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // halve the path
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b; returns false if already joined.
func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}

	return true
}

// Kruskal builds a minimum spanning tree of g's undirected projection.
// Candidate edges are taken ascending by weight (stable over the canonical
// name order, so equal weights resolve deterministically) and admitted
// whenever they join two distinct components. On a disconnected input the
// result is the minimum spanning forest, which is a defined outcome.
// Complexity: O(E log E).
func Kruskal(g *core.Graph, opts ...Option) (Tree, error) {
	if g == nil {
		return Tree{}, ErrGraphNil
	}
	o := resolve(opts)

	candidates := flatten(g, o.WeightFunc)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	uf := newUnionFind(g.NodeNames())
	var tree Tree
	for _, e := range candidates {
		if uf.union(e.From, e.To) {
			tree.Edges = append(tree.Edges, e)
			tree.Total += e.Weight
		}
	}

	return tree, nil
}
