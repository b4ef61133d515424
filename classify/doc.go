// Package classify guesses which generative model a graph resembles.
//
// The classifiers are statistical approximations over three observables
// of the undirected projection: the degree distribution, the edge
// density, and the clustering coefficient. They are heuristics with
// caller-tunable tolerances (WithTolerance), useful for triaging
// generated or imported networks; none of them is a proof, and
// structurally ambiguous graphs may satisfy several models at once.
//
// The underlying statistics (Degrees, Density, ClusteringCoefficient,
// RichClubCoefficient and friends) are exported for direct use.
package classify
