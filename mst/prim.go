// Package mst: Prim's construction.

package mst

import (
	"fmt"

	"github.com/euriklis/grapho/core"
)

// Prim grows a minimum spanning tree outward from a root over g's
// undirected projection. Each round scans the frontier for the cheapest
// edge leaving the tree; equal weights resolve by the canonical edge
// order, so the result is deterministic. The root defaults to the smallest
// node name and can be pinned with WithRoot. A disconnected input yields
// the spanning tree of the root's component only, which is a defined
// outcome. An empty graph yields an empty tree.
// Complexity: O(V·E) with the plain frontier scan.
func Prim(g *core.Graph, opts ...Option) (Tree, error) {
	if g == nil {
		return Tree{}, ErrGraphNil
	}
	o := resolve(opts)

	names := g.NodeNames()
	if len(names) == 0 {
		return Tree{}, nil
	}
	root := o.Root
	if root == "" {
		root = names[0]
	} else if !g.HasNode(root) {
		return Tree{}, fmt.Errorf("mst: root %q: %w", root, core.ErrNodeNotFound)
	}

	candidates := flatten(g, o.WeightFunc)
	inTree := map[string]bool{root: true}

	var tree Tree
	for {
		best := -1
		for i, e := range candidates {
			// Frontier edges bridge the tree and its complement.
			if inTree[e.From] == inTree[e.To] {
				continue
			}
			if best < 0 || e.Weight < candidates[best].Weight {
				best = i
			}
		}
		if best < 0 {
			break // frontier exhausted; the component is spanned
		}
		e := candidates[best]
		inTree[e.From] = true
		inTree[e.To] = true
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Weight
	}

	return tree, nil
}
