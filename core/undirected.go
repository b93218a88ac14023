package core

import "slices"

// Undirected is an in-memory undirected graph generic over vertex and
// edge types. It keeps insertion-ordered slices next to map indexes so
// iteration is deterministic while membership checks stay O(1).
//
// The adjacency index is mirrored: every edge is registered under both
// endpoints, so Degree, AdjacentEdges and EdgeBetween never care which
// endpoint an edge calls Source.
//
// Not safe for concurrent use. The goroutine mutating the graph must
// own it exclusively.
type Undirected[V comparable, E Edge[V]] struct {
	allowParallel bool
	allowLoops    bool

	vertexSet   map[V]struct{}
	vertexOrder []V

	edgeSet   map[E]struct{}
	edgeOrder []E

	incident map[V][]E       // per-vertex incident edges, insertion order
	byPair   map[V]map[V][]E // endpoint pair index, mirrored both ways
}

// compile-time check: Undirected satisfies the capability interface.
var _ Graph[int, Pair[int]] = (*Undirected[int, Pair[int]])(nil)

// New returns an empty Undirected graph configured by opts.
func New[V comparable, E Edge[V]](opts ...Option) *Undirected[V, E] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Undirected[V, E]{
		allowParallel: o.allowParallel,
		allowLoops:    o.allowLoops,
		vertexSet:     make(map[V]struct{}),
		edgeSet:       make(map[E]struct{}),
		incident:      make(map[V][]E),
		byPair:        make(map[V]map[V][]E),
	}
}

// HasVertex reports whether v is present.
func (g *Undirected[V, E]) HasVertex(v V) bool {
	_, ok := g.vertexSet[v]
	return ok
}

// HasEdge reports whether the exact edge value e is present.
func (g *Undirected[V, E]) HasEdge(e E) bool {
	_, ok := g.edgeSet[e]
	return ok
}

// HasEdgeBetween reports whether at least one edge joins u and v.
func (g *Undirected[V, E]) HasEdgeBetween(u, v V) bool {
	return len(g.byPair[u][v]) > 0
}

// Degree returns the number of edges incident to v, 0 if v is absent.
// A self-loop contributes one.
func (g *Undirected[V, E]) Degree(v V) int {
	return len(g.incident[v])
}

// AdjacentEdge returns the i-th edge incident to v in insertion order.
func (g *Undirected[V, E]) AdjacentEdge(v V, i int) (E, bool) {
	list := g.incident[v]
	if i < 0 || i >= len(list) {
		var zero E
		return zero, false
	}
	return list[i], true
}

// AdjacentEdges returns a copy of the edges incident to v, insertion
// order. Nil when v is absent or isolated.
func (g *Undirected[V, E]) AdjacentEdges(v V) []E {
	return slices.Clone(g.incident[v])
}

// EdgeBetween returns an edge joining u and v if one exists; the
// earliest inserted one when parallel edges are admitted.
func (g *Undirected[V, E]) EdgeBetween(u, v V) (E, bool) {
	if list := g.byPair[u][v]; len(list) > 0 {
		return list[0], true
	}
	var zero E
	return zero, false
}

// AddVertex inserts v; false if already present.
func (g *Undirected[V, E]) AddVertex(v V) bool {
	if g.HasVertex(v) {
		return false
	}
	g.vertexSet[v] = struct{}{}
	g.vertexOrder = append(g.vertexOrder, v)
	return true
}

// AddEdge inserts e, creating missing endpoints when createVertices is
// true. Rejections (false): duplicate edge value, self-loop without
// WithLoops, second edge on a joined pair without WithParallelEdges,
// missing endpoint without createVertices.
func (g *Undirected[V, E]) AddEdge(e E, createVertices bool) bool {
	u, v := e.Source(), e.Target()
	if g.HasEdge(e) {
		return false
	}
	if u == v && !g.allowLoops {
		return false
	}
	if !g.allowParallel && g.HasEdgeBetween(u, v) {
		return false
	}
	if !createVertices && (!g.HasVertex(u) || !g.HasVertex(v)) {
		return false
	}
	g.AddVertex(u)
	g.AddVertex(v)

	g.edgeSet[e] = struct{}{}
	g.edgeOrder = append(g.edgeOrder, e)
	g.incident[u] = append(g.incident[u], e)
	g.pairAdd(u, v, e)
	if u != v {
		g.incident[v] = append(g.incident[v], e)
		g.pairAdd(v, u, e)
	}
	return true
}

// RemoveVertex removes v and cascades over its incident edges; false if
// v is absent.
func (g *Undirected[V, E]) RemoveVertex(v V) bool {
	if !g.HasVertex(v) {
		return false
	}
	for _, e := range slices.Clone(g.incident[v]) {
		g.RemoveEdge(e)
	}
	delete(g.vertexSet, v)
	delete(g.incident, v)
	g.vertexOrder = without(g.vertexOrder, v)
	return true
}

// RemoveEdge removes the exact edge value e; false if absent.
func (g *Undirected[V, E]) RemoveEdge(e E) bool {
	if !g.HasEdge(e) {
		return false
	}
	u, v := e.Source(), e.Target()
	delete(g.edgeSet, e)
	g.edgeOrder = without(g.edgeOrder, e)
	g.incident[u] = without(g.incident[u], e)
	g.pairRemove(u, v, e)
	if u != v {
		g.incident[v] = without(g.incident[v], e)
		g.pairRemove(v, u, e)
	}
	return true
}

// Vertices returns a copy of the vertex set in insertion order.
func (g *Undirected[V, E]) Vertices() []V {
	return slices.Clone(g.vertexOrder)
}

// Edges returns a copy of the edge set in insertion order.
func (g *Undirected[V, E]) Edges() []E {
	return slices.Clone(g.edgeOrder)
}

// VertexCount returns the number of vertices.
func (g *Undirected[V, E]) VertexCount() int {
	return len(g.vertexOrder)
}

// EdgeCount returns the number of edges.
func (g *Undirected[V, E]) EdgeCount() int {
	return len(g.edgeOrder)
}

// Connected reports whether every vertex is reachable from every other.
// The empty graph is connected. O(V+E) breadth-first scan.
func (g *Undirected[V, E]) Connected() bool {
	if len(g.vertexOrder) == 0 {
		return true
	}
	start := g.vertexOrder[0]
	seen := map[V]struct{}{start: {}}
	queue := []V{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.incident[cur] {
			next := Opposite(e, cur)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == len(g.vertexSet)
}

func (g *Undirected[V, E]) pairAdd(a, b V, e E) {
	m, ok := g.byPair[a]
	if !ok {
		m = make(map[V][]E)
		g.byPair[a] = m
	}
	m[b] = append(m[b], e)
}

// pairRemove drops e from the a→b bucket and prunes empty maps so
// byPair never leaks entries for disconnected pairs.
func (g *Undirected[V, E]) pairRemove(a, b V, e E) {
	list := without(g.byPair[a][b], e)
	if len(list) == 0 {
		delete(g.byPair[a], b)
		if len(g.byPair[a]) == 0 {
			delete(g.byPair, a)
		}
		return
	}
	g.byPair[a][b] = list
}

// without returns s with the single occurrence of x removed.
func without[T comparable](s []T, x T) []T {
	return slices.DeleteFunc(s, func(y T) bool { return y == x })
}
