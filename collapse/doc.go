// Package collapse folds every chain of degree-2 vertices in an
// undirected graph into a single aggregate edge, losslessly, and
// expands the result back on demand.
//
// What
//
//   - Collapse(g) rewrites each maximal degree-2 chain of g as one
//     aggregate edge between the chain's endpoints and returns the
//     smaller graph; g itself is never mutated.
//   - Every aggregate is one of three variants:
//   - Simple: exactly one original edge
//   - Sequential: an ordered chain of ≥2 original edges
//   - Parallel: ≥2 independent chains joining the same endpoint pair
//   - Cycles collapse too: an isolated cycle, or a cycle touching the
//     rest of the graph at one vertex, becomes a Parallel of its two
//     halves between two surviving cycle vertices.
//   - Pre-existing multi-edges are never conflated: they fold into a
//     Parallel aggregate at seed time and act as walk barriers after.
//   - Restore / RestoreInto expand every aggregate back to the exact
//     original edge set; Flatten and Strip project a collapsed graph
//     down to tagged or bare edges.
//
// Why
//
//   - Shrink large sparse networks (road tracks, pipelines, traces)
//     to their branching skeleton while keeping every original edge
//     recoverable in order.
//   - Inspect connectivity of the skeleton without caring what each
//     aggregate stands in for (Strip, then Connected).
//
// Determinism
//
//	Candidates are processed in vertex insertion order and the
//	container iterates everything in insertion order, so a given input
//	always collapses to the same structure. Processing order can only
//	change which endpoint an aggregate calls Source.
//
// Parallel barriers
//
//	A walk never passes a vertex touching a Parallel aggregate, and a
//	candidate adjacent to one is skipped. This is deliberately
//	conservative: extending through a Parallel would splice new edges
//	into every one of its chains, silently changing what the aggregate
//	means. Such stops are reported at Warn level through the run's
//	logger.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) walk work; container removals cost O(E) each in
//     the worst case, so a full collapse is O(E²) on degenerate
//     all-chain graphs and close to linear on branching ones.
//   - Memory: O(V + E) for the collapsed graph and walk paths.
//
// Usage
//
//	g := core.New[int, core.Pair[int]]()
//	// ... add vertices and edges ...
//
//	c, err := collapse.Collapse(g)
//	if err != nil {
//	    // ErrNilGraph, ErrLoopEdge, or an ErrGraphInvariant wrap
//	}
//
//	// With diagnostics routed to a caller-owned logger:
//	c, err = collapse.Collapse(g, collapse.WithLogger(logger))
//
//	restored, err := collapse.Restore(c) // == g structurally
//
// Options
//
//   - DefaultOptions(): discarding logger.
//   - WithLogger(l):    route per-chain Debug and barrier Warn lines to l.
//
// Errors
//
//   - ErrNilGraph        nil input graph, zero Collapsed, nil destination.
//   - ErrLoopEdge        the input graph holds a self-loop.
//   - ErrEmptyAggregate  NewChain or Linearize over an empty list.
//   - ErrNotSimple       SimpleEdge on a non-Simple aggregate.
//   - ErrNotLinear       Linearize over a Parallel element.
//   - ErrBrokenChain     an edge list that is not a connected path.
//   - ErrNilTagFunc      Flatten with a nil tag function.
//   - ErrGraphInvariant  fatal: the walked graph lost an expected
//     vertex, edge or shared endpoint mid-rewrite.
package collapse
