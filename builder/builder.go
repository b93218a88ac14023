package builder

import (
	"errors"
	"fmt"

	"github.com/foldgraph/foldgraph/core"
)

// ErrTooFewVertices reports a size parameter below the constructor's
// minimum. Branch with errors.Is.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// Shape minima.
const (
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minGridDim    = 1
)

// Path builds the line 1─2─…─n. Edges are emitted in ascending order,
// so vertex i joins vertex i+1. Requires n ≥ 2.
func Path(n int) (*core.Undirected[int, core.Pair[int]], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := core.New[int, core.Pair[int]]()
	for v := 1; v <= n; v++ {
		g.AddVertex(v)
	}
	for v := 1; v < n; v++ {
		g.AddEdge(core.Pair[int]{From: v, To: v + 1}, false)
	}
	return g, nil
}

// Cycle builds the ring 1─2─…─n─1. The closing edge (n,1) is emitted
// last. Requires n ≥ 3.
func Cycle(n int) (*core.Undirected[int, core.Pair[int]], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	g.AddEdge(core.Pair[int]{From: n, To: 1}, false)
	return g, nil
}

// Star builds a hub-and-spoke graph of n vertices: hub 0 joined to
// leaves 1..n-1, spokes emitted by ascending leaf. Requires n ≥ 2.
func Star(n int) (*core.Undirected[int, core.Pair[int]], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := core.New[int, core.Pair[int]]()
	g.AddVertex(0)
	for leaf := 1; leaf < n; leaf++ {
		g.AddVertex(leaf)
		g.AddEdge(core.Pair[int]{From: 0, To: leaf}, false)
	}
	return g, nil
}

// Grid builds a rows×cols orthogonal grid. Vertices are numbered
// row-major from 0, so cell (r,c) is vertex r*cols+c; each cell joins
// its right neighbor, then its bottom neighbor. Requires both
// dimensions ≥ 1.
func Grid(rows, cols int) (*core.Undirected[int, core.Pair[int]], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	g := core.New[int, core.Pair[int]]()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(r*cols + c)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				g.AddEdge(core.Pair[int]{From: v, To: v + 1}, false)
			}
			if r+1 < rows {
				g.AddEdge(core.Pair[int]{From: v, To: v + cols}, false)
			}
		}
	}
	return g, nil
}
