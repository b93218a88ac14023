package collapse

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/foldgraph/foldgraph/core"
)

// Collapsed is the output of Collapse: an undirected graph whose edge
// type is *Aggregate. Its vertex set is a subset of the input's, and
// every aggregate records the original edges it stands in for. The
// wrapped container admits no parallel edges; multiplicity lives in the
// Parallel variant. Treat a Collapsed as read-only once built.
type Collapsed[V comparable, E core.Edge[V]] struct {
	*core.Undirected[V, *Aggregate[V, E]]
}

// Collapse folds every maximal chain of degree-2 vertices in g into a
// single aggregate edge and returns the resulting graph. The input is
// only read, never mutated.
//
// The run seeds a collapsed graph with one Simple aggregate per input
// edge (input multi-edges fold into Parallel aggregates on the spot),
// fixes the candidate list to the vertices of degree exactly 2, then
// walks outward from each candidate in both directions and rewrites the
// traversed chain as one aggregate edge between the walk endpoints. A
// walk that returns to its start found an isolated cycle; two walks
// meeting at the same far vertex found a cycle hanging off the graph at
// that point. Both rewrite into a Parallel pair of half-cycle chains.
// No second pass is needed: a vertex invalidated by an earlier rewrite
// fails the recheck, and a vertex whose degree dropped to 2 mid-run is
// parallel-adjacent by construction and is skipped conservatively.
//
// Errors: ErrNilGraph, ErrLoopEdge, and fatal ErrGraphInvariant wraps
// naming the offending vertex or edge.
func Collapse[V comparable, E core.Edge[V]](g core.Graph[V, E], opts ...Option) (Collapsed[V, E], error) {
	var zero Collapsed[V, E]
	if g == nil {
		return zero, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := seed(g)
	if err != nil {
		return zero, err
	}
	w := &walker[V, E]{c: c, log: o.Logger}

	var candidates []V
	for _, v := range c.Vertices() {
		if c.Degree(v) == 2 {
			candidates = append(candidates, v)
		}
	}
	for _, v := range candidates {
		if err := w.collapseAt(v); err != nil {
			return zero, err
		}
	}
	return Collapsed[V, E]{Undirected: c}, nil
}

// seed builds the starting collapsed graph: the input's vertex set and
// one Simple aggregate per input edge, with multi-edges between the
// same pair folded into a Parallel aggregate immediately.
func seed[V comparable, E core.Edge[V]](g core.Graph[V, E]) (*core.Undirected[V, *Aggregate[V, E]], error) {
	c := core.New[V, *Aggregate[V, E]]()
	for _, v := range g.Vertices() {
		c.AddVertex(v)
	}
	for _, e := range g.Edges() {
		if e.Source() == e.Target() {
			return nil, fmt.Errorf("%w: %v", ErrLoopEdge, e)
		}
		if err := insertMerging(c, NewSimple[V, E](e)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// insertMerging places agg between its endpoints, extending the
// aggregate already joining them if one exists. This is the single
// point where the no-parallel-edges rule of the collapsed container is
// honored.
func insertMerging[V comparable, E core.Edge[V]](c *core.Undirected[V, *Aggregate[V, E]], agg *Aggregate[V, E]) error {
	if existing, ok := c.EdgeBetween(agg.Source(), agg.Target()); ok {
		merged := existing.Extend(agg)
		if !c.RemoveEdge(existing) {
			return fmt.Errorf("%w: replacing %v", ErrGraphInvariant, existing)
		}
		if !c.AddEdge(merged, false) {
			return fmt.Errorf("%w: inserting merged %v", ErrGraphInvariant, merged)
		}
		return nil
	}
	if !c.AddEdge(agg, false) {
		return fmt.Errorf("%w: inserting %v", ErrGraphInvariant, agg)
	}
	return nil
}

// walker carries the state of one collapse run.
type walker[V comparable, E core.Edge[V]] struct {
	c   *core.Undirected[V, *Aggregate[V, E]]
	log *log.Logger
}

// collapseAt rewrites the chain running through candidate v, if v is
// still an eligible interior vertex.
func (w *walker[V, E]) collapseAt(v V) error {
	// Recheck: earlier rewrites may have removed v or changed its degree.
	if !w.c.HasVertex(v) || w.c.Degree(v) != 2 {
		return nil
	}
	e0, ok0 := w.c.AdjacentEdge(v, 0)
	e1, ok1 := w.c.AdjacentEdge(v, 1)
	if !ok0 || !ok1 {
		return fmt.Errorf("%w: degree-2 vertex %v lost an incident edge", ErrGraphInvariant, v)
	}
	if e0.IsParallel() || e1.IsParallel() {
		w.log.Warn("parallel aggregate at candidate, not walking through", "vertex", v)
		return nil
	}

	end1, path1 := w.walk(v, e0)
	end2, path2 := w.walk(v, e1)

	switch {
	case end1 == v && end2 == v:
		// Isolated cycle: both walks looped back to v over the same
		// edges, so their ordered union is the whole cycle, based at v.
		return w.rewriteCycle(unionPaths(path1, path2), v)
	case end1 == end2:
		// Cycle attached to the rest of the graph at end1. Reversing
		// path1 yields a closed walk based at the attachment vertex.
		slices.Reverse(path1)
		return w.rewriteCycle(append(path1, path2...), end1)
	case end1 == v || end2 == v:
		return fmt.Errorf("%w: walk from %v closed a cycle in one direction only", ErrGraphInvariant, v)
	default:
		// Plain chain from end1 through v to end2.
		slices.Reverse(path1)
		return w.rewriteChain(append(path1, path2...), end1, end2)
	}
}

// walk follows the chain leaving start through first and stops at the
// first vertex that is not a plain degree-2 interior: a branching or
// dead-end vertex, start itself (the chain closed a cycle), or a vertex
// touching a Parallel aggregate (conservative stop, see doc.go). It
// returns the stop vertex and the edges traversed, in walk order.
func (w *walker[V, E]) walk(start V, first *Aggregate[V, E]) (V, []*Aggregate[V, E]) {
	path := []*Aggregate[V, E]{first}
	cur := core.Opposite(first, start)
	for {
		if cur == start || w.c.Degree(cur) != 2 {
			return cur, path
		}
		adj := w.c.AdjacentEdges(cur)
		if adj[0].IsParallel() || adj[1].IsParallel() {
			w.log.Warn("parallel aggregate ahead, stopping walk", "vertex", cur)
			return cur, path
		}
		next := adj[0]
		if next == path[len(path)-1] {
			next = adj[1]
		}
		path = append(path, next)
		cur = core.Opposite(next, cur)
	}
}

// rewriteChain replaces the walked chain running a→…→b with a single
// aggregate between a and b, extending an existing aggregate into a
// Parallel when the endpoints are already joined.
func (w *walker[V, E]) rewriteChain(combined []*Aggregate[V, E], a, b V) error {
	lin, err := Linearize(combined)
	if err != nil {
		return fmt.Errorf("chain %v→%v: %w", a, b, err)
	}
	if lin.Source() != a || lin.Target() != b {
		return fmt.Errorf("%w: chain derived %v→%v, walked %v→%v",
			ErrGraphInvariant, lin.Source(), lin.Target(), a, b)
	}
	if err := w.removeWalked(combined, a, b); err != nil {
		return err
	}
	agg := lin.Simplify()
	w.log.Debug("collapsed chain", "from", a, "to", b, "edges", agg.Size())
	return insertMerging(w.c, agg)
}

// rewriteCycle replaces a walked cycle, given as a closed walk based at
// base, with a Parallel aggregate of its two halves split at the
// midpoint. The rewrite keeps exactly two cycle vertices: base and the
// split vertex.
func (w *walker[V, E]) rewriteCycle(combined []*Aggregate[V, E], base V) error {
	if len(combined) < 2 {
		return fmt.Errorf("%w: cycle through %v has %d edges", ErrGraphInvariant, base, len(combined))
	}
	mid := len(combined) / 2
	split := walkEnd(combined[:mid], base)

	half1, err := Linearize(combined[:mid])
	if err != nil {
		return fmt.Errorf("cycle through %v: %w", base, err)
	}
	half2, err := Linearize(combined[mid:])
	if err != nil {
		return fmt.Errorf("cycle through %v: %w", base, err)
	}
	// Single-edge halves surface their stored orientation, so check
	// endpoint pairs unordered instead of comparing walk order.
	if !joins(half1, base, split) || !joins(half2, split, base) {
		return fmt.Errorf("%w: cycle halves do not meet at %v and %v", ErrGraphInvariant, base, split)
	}
	if err := w.removeWalked(combined, base, split); err != nil {
		return err
	}
	par := half1.Extend(half2)
	w.log.Debug("collapsed cycle", "base", base, "split", split, "edges", par.Size())
	return insertMerging(w.c, par)
}

// removeWalked drops the traversed aggregate edges first, then every
// interior vertex, clearing room for the replacement aggregate. Strict:
// anything already missing means the walk state is corrupt.
func (w *walker[V, E]) removeWalked(combined []*Aggregate[V, E], keep1, keep2 V) error {
	interior := interiorVertices(combined, keep1, keep2)
	for _, a := range combined {
		if !w.c.RemoveEdge(a) {
			return fmt.Errorf("%w: walked edge %v already removed", ErrGraphInvariant, a)
		}
	}
	for _, u := range interior {
		if !w.c.RemoveVertex(u) {
			return fmt.Errorf("%w: interior vertex %v already removed", ErrGraphInvariant, u)
		}
	}
	return nil
}

// interiorVertices lists the vertices strictly inside the walk, the
// kept endpoints excluded.
func interiorVertices[V comparable, E core.Edge[V]](combined []*Aggregate[V, E], keep1, keep2 V) []V {
	var interior []V
	cur := keep1
	for _, a := range combined {
		cur = core.Opposite(a, cur)
		if cur != keep1 && cur != keep2 {
			interior = append(interior, cur)
		}
	}
	return interior
}

// walkEnd returns the final vertex of the walk over path starting at start.
func walkEnd[V comparable, E core.Edge[V]](path []*Aggregate[V, E], start V) V {
	cur := start
	for _, a := range path {
		cur = core.Opposite(a, cur)
	}
	return cur
}

// joins reports whether agg joins exactly the unordered pair {a, b}.
func joins[V comparable, E core.Edge[V]](agg *Aggregate[V, E], a, b V) bool {
	return (agg.Source() == a && agg.Target() == b) ||
		(agg.Source() == b && agg.Target() == a)
}

// unionPaths returns path1 extended by the path2 edges not already in
// it, preserving order. For an isolated cycle both walks cover the same
// edge set, so the union normally equals path1.
func unionPaths[V comparable, E core.Edge[V]](path1, path2 []*Aggregate[V, E]) []*Aggregate[V, E] {
	seen := make(map[*Aggregate[V, E]]struct{}, len(path1))
	for _, a := range path1 {
		seen[a] = struct{}{}
	}
	out := slices.Clone(path1)
	for _, a := range path2 {
		if _, ok := seen[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}
