package collapse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/foldgraph/foldgraph/core"
)

// Kind discriminates the three aggregate variants.
type Kind int

const (
	// Simple aggregates stand in for exactly one original edge.
	Simple Kind = iota
	// Sequential aggregates stand in for an ordered chain of two or
	// more original edges joining the aggregate's endpoints; the order
	// matters for faithful restoration.
	Sequential
	// Parallel aggregates stand in for two or more independent chains,
	// all joining the same endpoint pair.
	Parallel
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Sequential:
		return "Sequential"
	case Parallel:
		return "Parallel"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Aggregate is one edge of a collapsed graph: a closed variant type
// recording exactly which original edges it stands in for. It caches
// its two endpoints, so *Aggregate itself satisfies core.Edge and a
// collapsed graph can store aggregates directly as edges.
//
// Aggregates own their edge lists. Constructors and combinators copy
// operand chains instead of aliasing them, so no two aggregates ever
// share a list.
type Aggregate[V comparable, E core.Edge[V]] struct {
	kind Kind
	from V
	to   V

	// edges is the chain body for Simple (1 edge) and Sequential (≥2).
	edges []E
	// chains holds ≥2 non-empty chains for Parallel.
	chains [][]E
}

// NewSimple returns the aggregate standing in for the single edge e.
func NewSimple[V comparable, E core.Edge[V]](e E) *Aggregate[V, E] {
	return &Aggregate[V, E]{
		kind:  Simple,
		from:  e.Source(),
		to:    e.Target(),
		edges: []E{e},
	}
}

// NewChain builds an aggregate from edges listed in walk order: Simple
// for one edge, Sequential otherwise. Consecutive edges must share an
// endpoint; the aggregate's endpoints are derived by walking the list.
//
// Errors: ErrEmptyAggregate on an empty list, ErrBrokenChain when the
// list is not a connected path.
func NewChain[V comparable, E core.Edge[V]](edges []E) (*Aggregate[V, E], error) {
	switch len(edges) {
	case 0:
		return nil, ErrEmptyAggregate
	case 1:
		return NewSimple[V, E](edges[0]), nil
	}
	from, to, err := walkEnds[V](edges)
	if err != nil {
		return nil, err
	}
	return &Aggregate[V, E]{
		kind:  Sequential,
		from:  from,
		to:    to,
		edges: slices.Clone(edges),
	}, nil
}

// walkEnds derives the endpoints of a multi-edge path by walking it:
// the start is the first edge's endpoint not shared with the second
// edge, the end is wherever the last hop lands.
func walkEnds[V comparable, E core.Edge[V]](edges []E) (V, V, error) {
	var zero V
	first, second := edges[0], edges[1]

	var shared V
	switch {
	case first.Source() == second.Source() || first.Source() == second.Target():
		shared = first.Source()
	case first.Target() == second.Source() || first.Target() == second.Target():
		shared = first.Target()
	default:
		return zero, zero, fmt.Errorf("%w: edges %v and %v share no endpoint", ErrBrokenChain, first, second)
	}
	from := core.Opposite(first, shared)

	cur := shared
	for _, e := range edges[1:] {
		switch cur {
		case e.Source():
			cur = e.Target()
		case e.Target():
			cur = e.Source()
		default:
			return zero, zero, fmt.Errorf("%w: edge %v does not continue from %v", ErrBrokenChain, e, cur)
		}
	}
	return from, cur, nil
}

// Kind returns the variant discriminator.
func (a *Aggregate[V, E]) Kind() Kind { return a.kind }

// IsSimple reports whether the aggregate stands in for one edge.
func (a *Aggregate[V, E]) IsSimple() bool { return a.kind == Simple }

// IsSequential reports whether the aggregate is a single multi-edge chain.
func (a *Aggregate[V, E]) IsSequential() bool { return a.kind == Sequential }

// IsParallel reports whether the aggregate holds multiple chains.
func (a *Aggregate[V, E]) IsParallel() bool { return a.kind == Parallel }

// Source returns the first cached endpoint.
func (a *Aggregate[V, E]) Source() V { return a.from }

// Target returns the second cached endpoint.
func (a *Aggregate[V, E]) Target() V { return a.to }

// SimpleEdge returns the one original edge of a Simple aggregate.
// Errors: ErrNotSimple on any other variant.
func (a *Aggregate[V, E]) SimpleEdge() (E, error) {
	if a.kind != Simple {
		var zero E
		return zero, fmt.Errorf("%w: have %s", ErrNotSimple, a.kind)
	}
	return a.edges[0], nil
}

// Simplify normalizes degenerate wrappers: a one-chain Parallel becomes
// that chain simplified, a one-edge Sequential becomes Simple. Anything
// already minimal is returned as is, so Simplify is idempotent.
func (a *Aggregate[V, E]) Simplify() *Aggregate[V, E] {
	switch a.kind {
	case Parallel:
		if len(a.chains) == 1 {
			if inner, err := NewChain[V, E](a.chains[0]); err == nil {
				return inner.Simplify()
			}
		}
	case Sequential:
		if len(a.edges) == 1 {
			return NewSimple[V, E](a.edges[0])
		}
	}
	return a
}

// Extend merges two aggregates joining the same endpoint pair into one
// Parallel covering both operands' chains: Simple and Sequential
// operands contribute their chain whole, Parallel operands contribute
// every chain, in operand order. It never fails, covers all nine
// variant pairings, and composes fresh copies of every list. The
// result keeps the receiver's endpoint orientation.
func (a *Aggregate[V, E]) Extend(b *Aggregate[V, E]) *Aggregate[V, E] {
	return &Aggregate[V, E]{
		kind:   Parallel,
		from:   a.from,
		to:     a.to,
		chains: append(a.cloneChains(), b.cloneChains()...),
	}
}

// Linearize concatenates aggregates listed in walk order into a single
// chain aggregate: Simple for one total edge, Sequential otherwise.
//
// Errors: ErrEmptyAggregate on an empty list, ErrNotLinear if any
// element is Parallel, ErrBrokenChain if the concatenation does not
// form a connected path.
func Linearize[V comparable, E core.Edge[V]](aggs []*Aggregate[V, E]) (*Aggregate[V, E], error) {
	if len(aggs) == 0 {
		return nil, ErrEmptyAggregate
	}
	edges := make([]E, 0, len(aggs))
	for _, a := range aggs {
		if a.kind == Parallel {
			return nil, fmt.Errorf("%w: %v", ErrNotLinear, a)
		}
		edges = append(edges, a.edges...)
	}
	return NewChain[V, E](edges)
}

// Edges returns every original edge the aggregate stands in for, in
// chain order, chains concatenated for Parallel. The slice is a copy.
func (a *Aggregate[V, E]) Edges() []E {
	if a.kind == Parallel {
		out := make([]E, 0, a.Size())
		for _, c := range a.chains {
			out = append(out, c...)
		}
		return out
	}
	return slices.Clone(a.edges)
}

// Chains returns the chain decomposition: one chain for Simple and
// Sequential, every chain for Parallel. All lists are fresh copies.
func (a *Aggregate[V, E]) Chains() [][]E { return a.cloneChains() }

// Size returns the number of original edges the aggregate stands in for.
func (a *Aggregate[V, E]) Size() int {
	if a.kind == Parallel {
		n := 0
		for _, c := range a.chains {
			n += len(c)
		}
		return n
	}
	return len(a.edges)
}

// String renders a compact diagnostic form such as
// "Sequential(4)[1→5]" or "Parallel(2+2)[2→5]".
func (a *Aggregate[V, E]) String() string {
	if a.kind == Parallel {
		parts := make([]string, len(a.chains))
		for i, c := range a.chains {
			parts[i] = strconv.Itoa(len(c))
		}
		return fmt.Sprintf("Parallel(%s)[%v→%v]", strings.Join(parts, "+"), a.from, a.to)
	}
	return fmt.Sprintf("%s(%d)[%v→%v]", a.kind, len(a.edges), a.from, a.to)
}

// cloneChains exposes the aggregate's content as a fresh list of fresh
// chains, regardless of variant.
func (a *Aggregate[V, E]) cloneChains() [][]E {
	if a.kind == Parallel {
		out := make([][]E, len(a.chains))
		for i, c := range a.chains {
			out[i] = slices.Clone(c)
		}
		return out
	}
	return [][]E{slices.Clone(a.edges)}
}
