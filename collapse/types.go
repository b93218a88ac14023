// Package collapse provides option types and error definitions for
// degree-2 chain collapsing over a core.Graph.
package collapse

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors. The first three report bad caller input or an
// operation the aggregate variant does not support; both classes are
// recoverable at the call site. ErrGraphInvariant wraps are fatal for
// the run that raised them: they mean the walked graph lost a feature
// the algorithm had just proven present.
var (
	// ErrNilGraph is returned when a nil graph (or zero Collapsed) is passed.
	ErrNilGraph = errors.New("collapse: graph is nil")

	// ErrEmptyAggregate is returned by NewChain and Linearize on empty input.
	ErrEmptyAggregate = errors.New("collapse: aggregate requires at least one edge")

	// ErrNotSimple is returned by SimpleEdge on Sequential or Parallel aggregates.
	ErrNotSimple = errors.New("collapse: aggregate is not simple")

	// ErrNotLinear is returned by Linearize when an element is Parallel;
	// parallel structure cannot flatten into a single chain.
	ErrNotLinear = errors.New("collapse: parallel aggregate cannot be linearized")

	// ErrBrokenChain is returned when an edge list does not form a
	// connected path (consecutive edges sharing an endpoint).
	ErrBrokenChain = errors.New("collapse: edges do not form a connected path")

	// ErrLoopEdge is returned by Collapse for inputs holding self-loops.
	ErrLoopEdge = errors.New("collapse: self-loop edges are not supported")

	// ErrNilTagFunc is returned by Flatten when the tag function is nil.
	ErrNilTagFunc = errors.New("collapse: tag function is nil")

	// ErrGraphInvariant marks fatal walk corruption: an expected vertex,
	// edge or shared endpoint was missing mid-rewrite.
	ErrGraphInvariant = errors.New("collapse: graph invariant violated")
)

// Option configures a Collapse run via functional arguments.
type Option func(*Options)

// Options holds the collapse engine's tunables.
type Options struct {
	// Logger receives structured diagnostics: one Debug line per
	// rewritten chain or cycle, one Warn when a walk refuses to pass a
	// Parallel aggregate. The default discards everything; diagnostics
	// are always caller-supplied, never global.
	Logger *log.Logger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes engine diagnostics to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
