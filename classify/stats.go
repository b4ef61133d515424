// Shared structural statistics over the undirected projection.

package classify

import (
	"errors"
	"math"
	"sort"

	"github.com/euriklis/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("classify: graph is nil")

// Degrees returns the undirected degree of every node.
func Degrees(g *core.Graph) map[string]int {
	out := make(map[string]int, g.Order())
	for _, name := range g.NodeNames() {
		hood, _ := g.UndirectedNeighbors(name) // name comes from the catalog
		out[name] = len(hood)
	}

	return out
}

// DegreeSequence returns the undirected degrees sorted ascending.
func DegreeSequence(g *core.Graph) []int {
	degrees := Degrees(g)
	seq := make([]int, 0, len(degrees))
	for _, d := range degrees {
		seq = append(seq, d)
	}
	sort.Ints(seq)

	return seq
}

// MeanDegree returns the average undirected degree, 0 for an empty graph.
func MeanDegree(g *core.Graph) float64 {
	seq := DegreeSequence(g)
	if len(seq) == 0 {
		return 0
	}
	sum := 0
	for _, d := range seq {
		sum += d
	}

	return float64(sum) / float64(len(seq))
}

// UndirectedSize counts the distinct undirected pairs of the graph: a
// symmetric directed pair and a lone directed edge both count once.
func UndirectedSize(g *core.Graph) int {
	seen := make(map[[2]string]struct{}, g.Size())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		seen[[2]string{a, b}] = struct{}{}
	}

	return len(seen)
}

// Density returns the undirected edge density: realized pairs over the
// n·(n−1)/2 possible ones. Graphs below two nodes have density 0.
func Density(g *core.Graph) float64 {
	n := g.Order()
	if n < 2 {
		return 0
	}

	return float64(UndirectedSize(g)) / float64(n*(n-1)/2)
}

// LocalClustering returns the clustering coefficient of one node: the
// realized fraction of links among its undirected neighbors. Unknown
// nodes and nodes with fewer than two neighbors have coefficient 0.
func LocalClustering(g *core.Graph, name string) float64 {
	hood, err := g.UndirectedNeighbors(name)
	if err != nil || len(hood) < 2 {
		return 0
	}
	links := 0
	for i := 0; i < len(hood); i++ {
		for j := i + 1; j < len(hood); j++ {
			if g.HasEdge(hood[i], hood[j]) || g.HasEdge(hood[j], hood[i]) {
				links++
			}
		}
	}

	return float64(links) / float64(len(hood)*(len(hood)-1)/2)
}

// ClusteringCoefficient returns the average local clustering over all
// nodes, 0 for an empty graph.
func ClusteringCoefficient(g *core.Graph) float64 {
	names := g.NodeNames()
	if len(names) == 0 {
		return 0
	}
	sum := 0.0
	for _, name := range names {
		sum += LocalClustering(g, name)
	}

	return sum / float64(len(names))
}

// RichClubCoefficient returns the undirected density among the
// ceil(fraction·order) nodes of highest degree, ties broken by ascending
// name. Clubs below two nodes have coefficient 0.
func RichClubCoefficient(g *core.Graph, fraction float64) float64 {
	club := topByDegree(g, fraction)
	if len(club) < 2 {
		return 0
	}
	links := 0
	for i := 0; i < len(club); i++ {
		for j := i + 1; j < len(club); j++ {
			if g.HasEdge(club[i], club[j]) || g.HasEdge(club[j], club[i]) {
				links++
			}
		}
	}

	return float64(links) / float64(len(club)*(len(club)-1)/2)
}

// topByDegree lists the ceil(fraction·order) highest-degree node names.
func topByDegree(g *core.Graph, fraction float64) []string {
	if fraction <= 0 {
		return nil
	}
	if fraction > 1 {
		fraction = 1
	}
	names := g.NodeNames()
	degrees := Degrees(g)
	sort.SliceStable(names, func(i, j int) bool {
		return degrees[names[i]] > degrees[names[j]]
	})
	size := int(math.Ceil(float64(len(names)) * fraction))
	if size > len(names) {
		size = len(names)
	}

	return names[:size]
}
