// Package foldgraph collapses chains of degree-2 vertices in undirected
// graphs into single aggregate edges, and restores the original graph
// from the collapsed form on demand.
//
// 🚀 What is foldgraph?
//
//	A small, generic library for lossless graph simplification:
//		• Collapse: merge every maximal degree-2 chain into one aggregate edge
//		• Aggregates: Simple | Sequential | Parallel, preserving edge order
//		• Restore: expand aggregates back to the exact original edge set
//		• Flatten: project aggregates down to caller-chosen tags, or strip them
//		• DOT export: render the collapsed shape for inspection
//
// ✨ Why choose foldgraph?
//
//   - Generic over vertex and edge types - bring your own payloads
//   - Handles the hard cases - isolated cycles, hanging cycles, multi-edges
//   - Deterministic - insertion-ordered iteration, reproducible results
//   - Diagnosable - structured logging passed by the caller, never global
//
// Everything is organized under four subpackages:
//
//	core/     — graph capability interface, edge constraints and the
//	            concrete Undirected container
//	collapse/ — aggregate model, collapsing engine, restoration, flattening
//	builder/  — deterministic path/cycle/star/grid fixtures
//	dot/      — Graphviz DOT and SVG export of plain and collapsed graphs
//
// Quick ASCII example:
//
//	1──2──3──4──5   collapses to   1══5
//
//	a five-vertex line becomes a single Sequential aggregate holding its
//	four original edges; a cycle becomes one Parallel aggregate of two
//	chains between two antipodal vertices.
//
//	go get github.com/foldgraph/foldgraph
package foldgraph
