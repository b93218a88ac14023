// Package core defines the graph capability contract every foldgraph
// algorithm consumes, and provides Undirected, a concrete in-memory
// container satisfying it.
//
// The contract is deliberately small and generic:
//
//   - Vertices are any comparable type V; the package imposes no further
//     structure beyond map-key usability.
//   - Edges are any comparable type E exposing its two endpoints via
//     Source and Target (the Edge constraint). Stored orientation carries
//     no meaning in an undirected graph; Opposite recovers "the other
//     end" during walks.
//   - Mutators report change as a bool rather than an error: false means
//     the operation did not alter the graph (duplicate insert, missing
//     element, or an edge the container's policy rejects). Callers that
//     need strict semantics treat an unexpected false as fatal; callers
//     running idempotent cleanup simply ignore it.
//
// Undirected iterates vertices, edges and incident edges in insertion
// order, so every algorithm built on it is deterministic. It is not
// internally synchronized: the owner mutates it from one goroutine at a
// time.
package core

// Edge constrains the edge types an undirected graph can store: a value
// type (usable as a map key) exposing its two endpoints. Which endpoint
// is Source and which is Target is an artifact of construction, not a
// direction.
type Edge[V comparable] interface {
	comparable
	Source() V
	Target() V
}

// Opposite returns the endpoint of e other than v. Callers must pass
// one of e's two endpoints; if v is neither, the source end is returned.
func Opposite[V comparable, E Edge[V]](e E, v V) V {
	if e.Source() == v {
		return e.Target()
	}
	return e.Source()
}

// Graph is the capability interface algorithms consume. Any undirected
// container implementing it works with the collapse, builder and dot
// packages; Undirected is the in-repo implementation.
type Graph[V comparable, E Edge[V]] interface {
	// HasVertex reports whether v is present.
	HasVertex(v V) bool
	// HasEdge reports whether the exact edge value e is present.
	HasEdge(e E) bool
	// HasEdgeBetween reports whether at least one edge joins u and v.
	HasEdgeBetween(u, v V) bool

	// Degree returns the number of edges incident to v, or 0 if v is
	// absent. Self-loops count once.
	Degree(v V) int
	// AdjacentEdge returns the i-th edge incident to v in insertion
	// order. The bool is false when v is absent or i is out of range.
	AdjacentEdge(v V, i int) (E, bool)
	// AdjacentEdges returns the edges incident to v in insertion order.
	AdjacentEdges(v V) []E
	// EdgeBetween returns an edge joining u and v if one exists. When
	// parallel edges are admitted, the earliest inserted one is returned.
	EdgeBetween(u, v V) (E, bool)

	// AddVertex inserts v; false if it is already present.
	AddVertex(v V) bool
	// AddEdge inserts e. When createVertices is true, missing endpoints
	// are inserted first; otherwise missing endpoints reject the edge.
	// False also when e itself is a duplicate or container policy
	// (parallel edges, loops) rejects it.
	AddEdge(e E, createVertices bool) bool
	// RemoveVertex removes v and every edge incident to it; false if v
	// is absent.
	RemoveVertex(v V) bool
	// RemoveEdge removes the exact edge value e; false if absent.
	RemoveEdge(e E) bool

	// Vertices returns all vertices in insertion order.
	Vertices() []V
	// Edges returns all edges in insertion order.
	Edges() []E
	// VertexCount returns the number of vertices.
	VertexCount() int
	// EdgeCount returns the number of edges.
	EdgeCount() int
}

// Pair is the minimal undirected edge: two endpoints, no payload.
type Pair[V comparable] struct {
	From, To V
}

// Source returns the first endpoint.
func (p Pair[V]) Source() V { return p.From }

// Target returns the second endpoint.
func (p Pair[V]) Target() V { return p.To }

// Tagged is an undirected edge carrying a comparable payload tag.
type Tagged[V, T comparable] struct {
	From, To V
	Tag      T
}

// Source returns the first endpoint.
func (t Tagged[V, T]) Source() V { return t.From }

// Target returns the second endpoint.
func (t Tagged[V, T]) Target() V { return t.To }

// Option configures an Undirected container at construction time.
type Option func(*options)

type options struct {
	allowParallel bool
	allowLoops    bool
}

// WithParallelEdges admits multiple distinct edges between the same
// endpoint pair. Off by default: a second edge between an already
// joined pair is rejected by AddEdge.
func WithParallelEdges() Option {
	return func(o *options) { o.allowParallel = true }
}

// WithLoops admits self-loop edges (Source == Target). Off by default.
func WithLoops() Option {
	return func(o *options) { o.allowLoops = true }
}
