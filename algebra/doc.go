// Package algebra provides structural operations combining and projecting
// graphs: induced subgraphs, union, difference, the Kronecker (tensor)
// product, and the dense adjacency matrix.
//
// Every operation builds its result through the container's public
// operations and never mutates its operands. Union and Difference treat
// the first operand as the base: Union adds the second operand's missing
// nodes and edges to a clone, Difference removes them from one. Kronecker
// pairs every node of the first factor with every node of the second, so
// the product has order(a)·order(b) nodes and size(a)·size(b) edges.
package algebra
