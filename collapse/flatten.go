package collapse

import (
	"fmt"

	"github.com/foldgraph/foldgraph/core"
)

// Flatten projects every aggregate edge of c down to a caller-chosen
// tag, preserving the vertex set and endpoint structure. The result is
// a plain undirected graph whose edges carry only the tag; use it when
// the collapsed shape matters but the aggregate contents do not.
//
// Errors: ErrNilGraph, ErrNilTagFunc.
func Flatten[V comparable, E core.Edge[V], T comparable](c Collapsed[V, E], fn func(*Aggregate[V, E]) T) (*core.Undirected[V, core.Tagged[V, T]], error) {
	if c.Undirected == nil {
		return nil, ErrNilGraph
	}
	if fn == nil {
		return nil, ErrNilTagFunc
	}
	out := core.New[V, core.Tagged[V, T]]()
	for _, v := range c.Vertices() {
		out.AddVertex(v)
	}
	for _, agg := range c.Edges() {
		e := core.Tagged[V, T]{From: agg.Source(), To: agg.Target(), Tag: fn(agg)}
		if !out.AddEdge(e, false) {
			return nil, fmt.Errorf("%w: projecting %v", ErrGraphInvariant, agg)
		}
	}
	return out, nil
}

// Strip drops aggregate structure entirely, leaving the bare undirected
// shape of the collapsed graph. Handy for connectivity checks that do
// not care what each edge stands in for:
//
//	shape, err := collapse.Strip(c)
//	...
//	ok := shape.Connected()
//
// Errors: ErrNilGraph.
func Strip[V comparable, E core.Edge[V]](c Collapsed[V, E]) (*core.Undirected[V, core.Pair[V]], error) {
	if c.Undirected == nil {
		return nil, ErrNilGraph
	}
	out := core.New[V, core.Pair[V]]()
	for _, v := range c.Vertices() {
		out.AddVertex(v)
	}
	for _, agg := range c.Edges() {
		if !out.AddEdge(core.Pair[V]{From: agg.Source(), To: agg.Target()}, false) {
			return nil, fmt.Errorf("%w: stripping %v", ErrGraphInvariant, agg)
		}
	}
	return out, nil
}
