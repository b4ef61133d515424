// Package traverse provides breadth-first and depth-first search over a
// core.Graph, in single-source and whole-graph (per-component restart)
// forms, returning visit order, depth, and parent links.
//
// BFS drains a FIFO queue; DFS drains an explicit LIFO stack, never
// recursion. Both mark a node visited at first discovery and process each
// node exactly once. The queue and stack are minimal interfaces with
// slice-backed defaults, substitutable through WithQueue and WithStack.
//
// Callback contract: the per-node visit callback may fail without killing
// the traversal. A visit error is handed to the error callback together
// with the node name and the container, and the driver continues with the
// remaining discovered nodes. Returning the Stop sentinel from the visit
// callback terminates the traversal early with no error. Structural
// problems (nil graph, unknown start node) abort immediately.
//
// The driver is strictly sequential: one node's callback completes before
// the next node is visited. The only suspension point is inside the
// caller-supplied callback. Cancellation arrives through WithContext and is
// checked once per dequeued node.
package traverse
