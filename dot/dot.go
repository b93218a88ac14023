package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/foldgraph/foldgraph/collapse"
	"github.com/foldgraph/foldgraph/core"
)

// ErrNilGraph is returned when a nil graph (or zero Collapsed) is passed.
var ErrNilGraph = errors.New("dot: graph is nil")

const header = "graph G {\n  node [shape=circle, fontsize=12];\n\n"

// Graph renders g as undirected DOT. Every vertex gets its own node
// statement, so isolated vertices show up too.
func Graph[V comparable, E core.Edge[V]](g core.Graph[V, E]) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", vertexID(v))
	}
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", vertexID(e.Source()), vertexID(e.Target()))
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

// Collapsed renders a collapsed graph as undirected DOT with aggregate
// styling: Sequential edges are labeled with their kind and edge count,
// Parallel edges additionally dashed with per-chain counts. Simple
// edges render plain, since they stand in for single original edges.
func Collapsed[V comparable, E core.Edge[V]](c collapse.Collapsed[V, E]) (string, error) {
	if c.Undirected == nil {
		return "", ErrNilGraph
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	for _, v := range c.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", vertexID(v))
	}
	buf.WriteString("\n")
	for _, agg := range c.Edges() {
		u, v := vertexID(agg.Source()), vertexID(agg.Target())
		if attrs := aggregateAttrs(agg); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", u, v, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", u, v)
		}
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

func aggregateAttrs[V comparable, E core.Edge[V]](agg *collapse.Aggregate[V, E]) []string {
	switch agg.Kind() {
	case collapse.Sequential:
		return []string{fmt.Sprintf("label=%q", fmt.Sprintf("Sequential(%d)", agg.Size()))}
	case collapse.Parallel:
		chains := agg.Chains()
		sizes := make([]string, len(chains))
		for i, chain := range chains {
			sizes[i] = strconv.Itoa(len(chain))
		}
		label := fmt.Sprintf("Parallel(%s)", strings.Join(sizes, "+"))
		return []string{fmt.Sprintf("label=%q", label), "style=dashed"}
	}
	return nil
}

func vertexID[V comparable](v V) string {
	return fmt.Sprint(v)
}

// RenderSVG renders DOT source to SVG bytes with an embedded Graphviz;
// no external binary is involved.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
