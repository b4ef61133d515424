// Package algebra: dense adjacency matrix.

package algebra

import (
	"github.com/euriklis/grapho/core"
)

// AdjacencyMatrix renders g as a dense V×V matrix over the sorted node
// names, which are returned alongside as the row/column index. Cell [i][j]
// holds the derived weight of the edge names[i]→names[j], or 0 where no
// admissible edge exists. The representation costs O(V²) memory and is
// meant for small and medium graphs.
func AdjacencyMatrix(g *core.Graph, opts ...Option) ([][]float64, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := resolve(opts)

	names := g.NodeNames()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	matrix := make([][]float64, len(names))
	for i := range matrix {
		matrix[i] = make([]float64, len(names))
	}
	for _, e := range g.Edges() {
		w := derive(g, e, o.WeightFunc)
		if w <= 0 {
			continue
		}
		matrix[index[e.From]][index[e.To]] = w
	}

	return matrix, names, nil
}
