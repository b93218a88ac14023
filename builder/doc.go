// Package builder constructs small deterministic graph fixtures:
// paths, cycles, stars and orthogonal grids over int vertices and
// core.Pair edges.
//
// Every constructor numbers its vertices by a fixed documented scheme
// and emits edges in a stable order, so fixtures are reproducible in
// tests, examples and benchmarks. Size parameters below each shape's
// minimum return ErrTooFewVertices with the constructor named in the
// wrap.
//
// Usage
//
//	g, err := builder.Cycle(10)
//	if err != nil { ... }
//	c, err := collapse.Collapse[int, core.Pair[int]](g)
package builder
