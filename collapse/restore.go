package collapse

import (
	"fmt"

	"github.com/foldgraph/foldgraph/core"
)

// Restore expands c back into the graph it was collapsed from: a fresh
// container receives every collapsed vertex and every original edge of
// every aggregate. The container admits parallel edges so inputs that
// legitimately carried multi-edges round-trip; interior vertices
// reappear as edge insertion recreates their endpoints.
//
// Restore is a left inverse of Collapse: for any graph g,
// Restore(Collapse(g)) has g's exact vertex and edge sets.
func Restore[V comparable, E core.Edge[V]](c Collapsed[V, E]) (*core.Undirected[V, E], error) {
	out := core.New[V, E](core.WithParallelEdges())
	if err := RestoreInto(c, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RestoreInto accumulates the expansion into dst, creating missing
// endpoint vertices as edges are inserted. Re-inserting a vertex dst
// already holds is tolerated; an edge dst rejects is fatal, since the
// expansion of a well-formed collapsed graph never repeats an edge.
//
// Errors: ErrNilGraph, and ErrGraphInvariant wraps naming the rejected
// edge and its aggregate.
func RestoreInto[V comparable, E core.Edge[V]](c Collapsed[V, E], dst core.Graph[V, E]) error {
	if c.Undirected == nil {
		return ErrNilGraph
	}
	if dst == nil {
		return fmt.Errorf("%w: destination", ErrNilGraph)
	}
	for _, v := range c.Vertices() {
		dst.AddVertex(v)
	}
	for _, agg := range c.Edges() {
		for _, e := range agg.Edges() {
			if !dst.AddEdge(e, true) {
				return fmt.Errorf("%w: restoring edge %v of %v", ErrGraphInvariant, e, agg)
			}
		}
	}
	return nil
}
