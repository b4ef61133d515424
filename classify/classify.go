// Heuristic model classifiers.

package classify

import (
	"math"

	"github.com/euriklis/grapho/core"
)

// defaultTolerance is the relative slack every classifier grants its
// statistical comparisons.
const defaultTolerance = 0.1

// Option configures the classifiers via functional arguments.
type Option func(*Options)

// Options holds the classifier parameters.
type Options struct {
	// Tolerance is the slack applied to every statistical comparison.
	Tolerance float64
}

// WithTolerance overrides the comparison slack. Values outside (0, 1]
// are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 && tol <= 1 {
			o.Tolerance = tol
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{Tolerance: defaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// IsErdosRenyi reports whether g looks like a G(n, p) sample: density
// close to p and no clustering excess over density, since independent
// wiring produces no transitivity beyond chance.
func IsErdosRenyi(g *core.Graph, p float64, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	density := Density(g)
	if math.Abs(density-p) > o.Tolerance {
		return false, nil
	}

	return math.Abs(ClusteringCoefficient(g)-density) <= o.Tolerance, nil
}

// IsRingLattice reports whether g looks like the regular (n, k) ring:
// at most a tolerance fraction of nodes deviate from degree 2k.
func IsRingLattice(g *core.Graph, k int, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	degrees := Degrees(g)
	if len(degrees) == 0 {
		return false, nil
	}
	deviant := 0
	for _, d := range degrees {
		if d != 2*k {
			deviant++
		}
	}

	return float64(deviant)/float64(len(degrees)) <= o.Tolerance, nil
}

// IsWattsStrogatz reports whether g looks like a small-world rewiring of
// the (n, k) lattice: mean degree near 2k and clustering in excess of
// density, the lattice inheritance the rewiring dilutes but rarely
// destroys.
func IsWattsStrogatz(g *core.Graph, k int, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	want := float64(2 * k)
	if math.Abs(MeanDegree(g)-want) > o.Tolerance*want {
		return false, nil
	}

	return ClusteringCoefficient(g) > Density(g), nil
}

// IsBarabasiAlbert reports whether g's degree distribution is
// heavy-tailed the way preferential attachment leaves it: the largest
// hub at least doubles the mean degree, scaled down by the tolerance.
func IsBarabasiAlbert(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	seq := DegreeSequence(g)
	if len(seq) == 0 {
		return false, nil
	}
	mean := MeanDegree(g)
	if mean == 0 {
		return false, nil
	}
	hub := float64(seq[len(seq)-1])

	return hub >= (2-o.Tolerance)*mean, nil
}

// HasRichClub reports whether the top-degree fraction of g forms a
// near-clique: rich-club coefficient at least 1 minus the tolerance.
func HasRichClub(g *core.Graph, fraction float64, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	return RichClubCoefficient(g, fraction) >= 1-o.Tolerance, nil
}

// IsHierarchical reports whether clustering decreases with degree, the
// signature of modular hierarchy: hubs bridge modules and cluster less
// than the peripheral nodes inside them.
func IsHierarchical(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	names := g.NodeNames()
	if len(names) < 4 {
		return false, nil
	}
	top := topByDegree(g, 0.5)
	inTop := make(map[string]struct{}, len(top))
	for _, name := range top {
		inTop[name] = struct{}{}
	}

	topSum, bottomSum, bottomCount := 0.0, 0.0, 0
	for _, name := range names {
		c := LocalClustering(g, name)
		if _, ok := inTop[name]; ok {
			topSum += c
		} else {
			bottomSum += c
			bottomCount++
		}
	}
	if bottomCount == 0 {
		return false, nil
	}
	topAvg := topSum / float64(len(top))
	bottomAvg := bottomSum / float64(bottomCount)

	return topAvg+o.Tolerance < bottomAvg, nil
}

// IsApollonian reports whether g matches the maximal-planar edge budget
// of recursive triangle subdivision: 3n−6 undirected pairs (3 for the
// bare triangle) together with clustering in excess of density.
func IsApollonian(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	n := g.Order()
	pairs := UndirectedSize(g)
	switch {
	case n < 3:
		return false, nil
	case n == 3:
		return pairs == 3, nil
	}
	want := float64(3*n - 6)
	if math.Abs(float64(pairs)-want) > o.Tolerance*want {
		return false, nil
	}

	return ClusteringCoefficient(g) > Density(g), nil
}

// IsStochasticBlockModel reports whether g is consistent with a planted
// partition of the given community sizes and wiring probabilities: total
// order matches and the realized pair count sits within tolerance of the
// model's expectation.
func IsStochasticBlockModel(g *core.Graph, sizes []int, pIn, pOut float64, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	total := 0
	within := 0
	for _, s := range sizes {
		total += s
		within += s * (s - 1) / 2
	}
	if total != g.Order() || total < 2 {
		return false, nil
	}
	all := total * (total - 1) / 2
	expected := float64(within)*pIn + float64(all-within)*pOut

	return math.Abs(float64(UndirectedSize(g))-expected) <= o.Tolerance*float64(all), nil
}

// IsLatentSpace reports whether g looks like a random-dot-product or
// geometric graph: strong clustering excess over density (nearby nodes
// share neighborhoods) without the heavy-tailed hubs of preferential
// attachment.
func IsLatentSpace(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)

	if ClusteringCoefficient(g) <= Density(g)+o.Tolerance {
		return false, nil
	}
	seq := DegreeSequence(g)
	if len(seq) == 0 {
		return false, nil
	}
	mean := MeanDegree(g)
	if mean == 0 {
		return false, nil
	}

	return float64(seq[len(seq)-1]) < (2-o.Tolerance)*mean, nil
}
