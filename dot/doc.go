// Package dot exports graphs in Graphviz DOT form and renders DOT to
// SVG, for eyeballing what a collapse did.
//
// Graph handles any core.Graph; Collapsed additionally styles aggregate
// edges: Sequential edges carry a kind/size label, Parallel edges are
// dashed. Emission follows container order, so output is deterministic
// for a given graph.
//
// Usage
//
//	c, _ := collapse.Collapse[int, core.Pair[int]](g)
//	src, err := dot.Collapsed(c)
//	if err != nil { ... }
//	svg, err := dot.RenderSVG(src)
package dot
