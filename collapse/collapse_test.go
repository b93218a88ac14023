package collapse_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldgraph/foldgraph/collapse"
	"github.com/foldgraph/foldgraph/core"
)

func te(u, v int, tag string) core.Tagged[int, string] {
	return core.Tagged[int, string]{From: u, To: v, Tag: tag}
}

// buildPath returns the path graph 1─2─…─n.
func buildPath(n int) *core.Undirected[int, core.Pair[int]] {
	g := core.New[int, core.Pair[int]]()
	for i := 1; i < n; i++ {
		g.AddEdge(pe(i, i+1), true)
	}
	return g
}

// buildCycle returns the cycle graph 1─2─…─n─1.
func buildCycle(n int) *core.Undirected[int, core.Pair[int]] {
	g := buildPath(n)
	g.AddEdge(pe(n, 1), true)
	return g
}

// buildDiamond returns 1─2, 2─3, 2─4, 3─5, 4─5, 5─6: a chain of two
// parallel two-edge paths between 2 and 5, with a tail on each side.
func buildDiamond() *core.Undirected[int, core.Pair[int]] {
	g := core.New[int, core.Pair[int]]()
	for _, e := range []core.Pair[int]{pe(1, 2), pe(2, 3), pe(2, 4), pe(3, 5), pe(4, 5), pe(5, 6)} {
		g.AddEdge(e, true)
	}
	return g
}

// assertRoundTrip collapses g, restores the result, and requires the
// restored graph to match g's exact vertex and edge sets.
func assertRoundTrip[E core.Edge[int]](t *testing.T, g *core.Undirected[int, E]) {
	t.Helper()

	c, err := collapse.Collapse[int, E](g)
	require.NoError(t, err)

	restored, err := collapse.Restore(c)
	require.NoError(t, err)
	assert.ElementsMatch(t, g.Vertices(), restored.Vertices(), "vertex sets must match")
	assert.ElementsMatch(t, g.Edges(), restored.Edges(), "edge sets must match")
}

// TestCollapse_NilGraph verifies the nil-input guard.
func TestCollapse_NilGraph(t *testing.T) {
	_, err := collapse.Collapse[int, core.Pair[int]](nil)
	assert.ErrorIs(t, err, collapse.ErrNilGraph)
}

// TestCollapse_LoopEdge verifies that self-loops are rejected up front.
func TestCollapse_LoopEdge(t *testing.T) {
	g := core.New[int, core.Pair[int]](core.WithLoops())
	g.AddEdge(pe(1, 1), true)

	_, err := collapse.Collapse[int, core.Pair[int]](g)
	assert.ErrorIs(t, err, collapse.ErrLoopEdge)
}

// TestCollapse_SingleEdge verifies the smallest path: nothing is
// eligible, so the output is the input with one Simple aggregate.
func TestCollapse_SingleEdge(t *testing.T) {
	c, err := collapse.Collapse[int, core.Pair[int]](buildPath(2))
	require.NoError(t, err)

	assert.Equal(t, 2, c.VertexCount())
	assert.Equal(t, 1, c.EdgeCount())
	agg, ok := c.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, collapse.Simple, agg.Kind())
}

// TestCollapse_Path verifies that a path graph folds to a single
// Sequential edge between its endpoints, for a range of lengths.
func TestCollapse_Path(t *testing.T) {
	for _, n := range []int{3, 5, 10} {
		c, err := collapse.Collapse[int, core.Pair[int]](buildPath(n))
		require.NoError(t, err, "path %d", n)

		assert.Equal(t, 2, c.VertexCount(), "path %d", n)
		assert.Equal(t, 1, c.EdgeCount(), "path %d", n)

		agg, ok := c.EdgeBetween(1, n)
		require.True(t, ok, "path %d: endpoints must survive", n)
		assert.Equal(t, collapse.Sequential, agg.Kind())
		assert.Equal(t, n-1, agg.Size(), "every original edge must be recorded")
		assert.Equal(t, 1, agg.Source(), "chain runs endpoint to endpoint")
		assert.Equal(t, n, agg.Target())
	}
}

// TestCollapse_Cycle verifies that a cycle folds to exactly one Parallel
// aggregate of two chains between two surviving cycle vertices.
func TestCollapse_Cycle(t *testing.T) {
	for _, n := range []int{3, 4, 7, 10} {
		c, err := collapse.Collapse[int, core.Pair[int]](buildCycle(n))
		require.NoError(t, err, "cycle %d", n)

		assert.Equal(t, 2, c.VertexCount(), "cycle %d", n)
		assert.Equal(t, 1, c.EdgeCount(), "cycle %d", n)

		require.Len(t, c.Edges(), 1)
		agg := c.Edges()[0]
		assert.Equal(t, collapse.Parallel, agg.Kind(), "cycle %d", n)
		assert.Len(t, agg.Chains(), 2, "cycle %d: exactly two half-chains", n)
		assert.Equal(t, n, agg.Size(), "cycle %d: all edges recorded", n)
	}
}

// TestCollapse_CycleSplit pins down the deterministic shape of a
// ten-cycle: based at the first vertex, split at its antipode.
func TestCollapse_CycleSplit(t *testing.T) {
	c, err := collapse.Collapse[int, core.Pair[int]](buildCycle(10))
	require.NoError(t, err)

	agg, ok := c.EdgeBetween(1, 6)
	require.True(t, ok, "ten-cycle must split 1/6")
	assert.Equal(t, "Parallel(5+5)[1→6]", agg.String())
}

// TestCollapse_Diamond verifies the worked example: two length-2 paths
// between 2 and 5 merge into one Parallel aggregate, the tails fold to
// nothing, and the interior vertices disappear.
func TestCollapse_Diamond(t *testing.T) {
	c, err := collapse.Collapse[int, core.Pair[int]](buildDiamond())
	require.NoError(t, err)

	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 3, c.EdgeCount())
	for _, v := range []int{1, 2, 5, 6} {
		assert.True(t, c.HasVertex(v), "vertex %d must survive", v)
	}
	assert.False(t, c.HasVertex(3), "interior vertex must be removed")
	assert.False(t, c.HasVertex(4), "interior vertex must be removed")

	tail, ok := c.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, collapse.Simple, tail.Kind())

	par, ok := c.EdgeBetween(2, 5)
	require.True(t, ok)
	assert.Equal(t, collapse.Parallel, par.Kind())
	chains := par.Chains()
	require.Len(t, chains, 2)
	assert.Len(t, chains[0], 2)
	assert.Len(t, chains[1], 2)

	assert.False(t, c.HasEdgeBetween(2, 3))
	assert.False(t, c.HasEdgeBetween(3, 5))
}

// TestCollapse_AttachedCycle verifies a cycle hanging off the graph at
// one vertex: it folds to a Parallel based at the attachment vertex,
// and the attachment vertex keeps its outside edges.
func TestCollapse_AttachedCycle(t *testing.T) {
	g := core.New[int, core.Pair[int]]()
	for _, e := range []core.Pair[int]{pe(1, 2), pe(2, 3), pe(3, 4), pe(4, 1), pe(1, 5)} {
		g.AddEdge(e, true)
	}

	c, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, 3, c.VertexCount())
	assert.Equal(t, 2, c.EdgeCount())

	par, ok := c.EdgeBetween(1, 3)
	require.True(t, ok, "cycle must fold between attachment 1 and split 3")
	assert.Equal(t, collapse.Parallel, par.Kind())
	assert.Equal(t, 4, par.Size())

	outside, ok := c.EdgeBetween(1, 5)
	require.True(t, ok, "attachment vertex must keep its outside edge")
	assert.Equal(t, collapse.Simple, outside.Kind())
}

// TestCollapse_TwoAttachedCycles verifies two cycles sharing a single
// vertex: each folds independently into a Parallel based there.
func TestCollapse_TwoAttachedCycles(t *testing.T) {
	g := core.New[int, core.Pair[int]]()
	for _, e := range []core.Pair[int]{pe(1, 2), pe(2, 3), pe(3, 1), pe(1, 4), pe(4, 5), pe(5, 1)} {
		g.AddEdge(e, true)
	}

	c, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, 3, c.VertexCount())
	assert.Equal(t, 2, c.EdgeCount())
	for _, agg := range c.Edges() {
		assert.Equal(t, collapse.Parallel, agg.Kind())
		assert.Equal(t, 3, agg.Size())
		assert.True(t, agg.Source() == 1 || agg.Target() == 1, "both cycles base at the shared vertex")
	}

	assertRoundTrip(t, g)
}

// TestCollapse_NoEligibleVertices verifies that a graph without degree-2
// vertices passes through structurally unchanged.
func TestCollapse_NoEligibleVertices(t *testing.T) {
	g := core.New[int, core.Pair[int]]()
	for leaf := 2; leaf <= 5; leaf++ {
		g.AddEdge(pe(1, leaf), true)
	}

	c, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	for _, agg := range c.Edges() {
		assert.Equal(t, collapse.Simple, agg.Kind())
	}
}

// TestCollapse_InputNotMutated verifies that the input graph is only
// read: all its vertices and edges remain after a collapse.
func TestCollapse_InputNotMutated(t *testing.T) {
	g := buildDiamond()
	_, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge(pe(3, 5)))
}

// TestCollapse_Deterministic verifies that repeated runs over the same
// input produce identical structure, aggregate by aggregate.
func TestCollapse_Deterministic(t *testing.T) {
	g := buildDiamond()

	first, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)
	second, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, first.Vertices(), second.Vertices())
	require.Equal(t, first.EdgeCount(), second.EdgeCount())
	for i, agg := range first.Edges() {
		assert.Equal(t, agg.String(), second.Edges()[i].String())
		assert.Equal(t, agg.Chains(), second.Edges()[i].Chains())
	}
}

// TestCollapse_MultiEdgeSeed verifies that input multi-edges fold into a
// Parallel aggregate at seed time and block walks conservatively: the
// adjacent candidate is skipped and a warning is logged.
func TestCollapse_MultiEdgeSeed(t *testing.T) {
	g := core.New[int, core.Tagged[int, string]](core.WithParallelEdges())
	g.AddEdge(te(1, 2, "a"), true)
	g.AddEdge(te(1, 2, "b"), true)
	g.AddEdge(te(2, 3, ""), true)

	var buf bytes.Buffer
	c, err := collapse.Collapse[int, core.Tagged[int, string]](g, collapse.WithLogger(log.New(&buf)))
	require.NoError(t, err)

	assert.Equal(t, 3, c.VertexCount(), "nothing may fold through the multi-edge")
	assert.Equal(t, 2, c.EdgeCount())

	par, ok := c.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, collapse.Parallel, par.Kind())
	assert.ElementsMatch(t, []core.Tagged[int, string]{te(1, 2, "a"), te(1, 2, "b")}, par.Edges())

	assert.Contains(t, buf.String(), "parallel aggregate", "conservative stop must be logged")

	assertRoundTrip(t, g)
}

// TestCollapse_ParallelBarrier verifies that a chain walk stops at a
// vertex touching a Parallel aggregate instead of folding through it.
func TestCollapse_ParallelBarrier(t *testing.T) {
	// 4─0─1═2─5 with a doubled middle edge.
	g := core.New[int, core.Tagged[int, string]](core.WithParallelEdges())
	g.AddEdge(te(4, 0, ""), true)
	g.AddEdge(te(0, 1, ""), true)
	g.AddEdge(te(1, 2, "x"), true)
	g.AddEdge(te(1, 2, "y"), true)
	g.AddEdge(te(2, 5, ""), true)

	c, err := collapse.Collapse[int, core.Tagged[int, string]](g)
	require.NoError(t, err)

	// 4─0─1 folds, the doubled edge and its flanks stay put.
	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.False(t, c.HasVertex(0), "plain chain interior folds")

	chain, ok := c.EdgeBetween(4, 1)
	require.True(t, ok)
	assert.Equal(t, collapse.Sequential, chain.Kind())
	assert.Equal(t, 2, chain.Size())

	par, ok := c.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, collapse.Parallel, par.Kind())
	assert.True(t, c.HasEdgeBetween(2, 5), "edge beyond the barrier survives untouched")

	assertRoundTrip(t, g)
}

// TestCollapse_MergeAtSharedEndpoints verifies that chains folding onto
// an already-joined endpoint pair extend into a Parallel instead of
// violating the no-multi-edge rule of the collapsed container.
func TestCollapse_MergeAtSharedEndpoints(t *testing.T) {
	// Three disjoint paths between 1 and 2: direct, via 3, via 4─5.
	g := core.New[int, core.Pair[int]]()
	for _, e := range []core.Pair[int]{pe(1, 2), pe(1, 3), pe(3, 2), pe(1, 4), pe(4, 5), pe(5, 2)} {
		g.AddEdge(e, true)
	}

	c, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, 2, c.VertexCount())
	assert.Equal(t, 1, c.EdgeCount())

	par, ok := c.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, collapse.Parallel, par.Kind())
	assert.Len(t, par.Chains(), 3, "all three routes recorded as chains")
	assert.Equal(t, 6, par.Size())

	assertRoundTrip(t, g)
}

// TestCollapse_DisconnectedComponents verifies that components fold
// independently: a path component and a cycle component in one graph.
func TestCollapse_DisconnectedComponents(t *testing.T) {
	g := buildPath(5)
	for _, e := range []core.Pair[int]{pe(10, 11), pe(11, 12), pe(12, 10)} {
		g.AddEdge(e, true)
	}

	c, err := collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)

	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 2, c.EdgeCount())

	chain, ok := c.EdgeBetween(1, 5)
	require.True(t, ok)
	assert.Equal(t, collapse.Sequential, chain.Kind())

	require.Len(t, c.AdjacentEdges(10), 1)
	assert.Equal(t, collapse.Parallel, c.AdjacentEdges(10)[0].Kind())

	assertRoundTrip(t, g)
}

// TestCollapse_RoundTrip verifies Restore∘Collapse as identity over a
// spread of shapes.
func TestCollapse_RoundTrip(t *testing.T) {
	t.Run("path", func(t *testing.T) { assertRoundTrip(t, buildPath(12)) })
	t.Run("cycle", func(t *testing.T) { assertRoundTrip(t, buildCycle(9)) })
	t.Run("diamond", func(t *testing.T) { assertRoundTrip(t, buildDiamond()) })
	t.Run("star_with_chains", func(t *testing.T) {
		g := core.New[int, core.Pair[int]]()
		// Three chains of length 3 radiating from vertex 0.
		for arm := 0; arm < 3; arm++ {
			base := 1 + arm*3
			g.AddEdge(pe(0, base), true)
			g.AddEdge(pe(base, base+1), true)
			g.AddEdge(pe(base+1, base+2), true)
		}
		assertRoundTrip(t, g)
	})
}

// TestCollapse_RoundTripRandom verifies the round-trip on seeded random
// sparse graphs, where chains, cycles and branches mix freely.
func TestCollapse_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 8 + rng.Intn(25)
		g := core.New[int, core.Pair[int]]()
		for v := 1; v <= n; v++ {
			g.AddVertex(v)
		}
		// A spanning chain plus a few random chords keeps degree low.
		for v := 1; v < n; v++ {
			g.AddEdge(pe(v, v+1), false)
		}
		for i := 0; i < n/4; i++ {
			u, v := 1+rng.Intn(n), 1+rng.Intn(n)
			if u == v || g.HasEdgeBetween(u, v) {
				continue
			}
			g.AddEdge(pe(u, v), false)
		}

		t.Run(fmt.Sprintf("trial_%d", trial), func(t *testing.T) {
			assertRoundTrip(t, g)

			c, err := collapse.Collapse[int, core.Pair[int]](g)
			require.NoError(t, err)
			total := 0
			for _, agg := range c.Edges() {
				total += agg.Size()
			}
			assert.Equal(t, g.EdgeCount(), total, "aggregates must partition the edge set")
		})
	}
}

// TestCollapse_EmptyAndEdgeless verifies the degenerate inputs: no
// vertices at all, and vertices with no edges.
func TestCollapse_EmptyAndEdgeless(t *testing.T) {
	c, err := collapse.Collapse[int, core.Pair[int]](core.New[int, core.Pair[int]]())
	require.NoError(t, err)
	assert.Zero(t, c.VertexCount())
	assert.Zero(t, c.EdgeCount())

	g := core.New[int, core.Pair[int]]()
	g.AddVertex(1)
	g.AddVertex(2)
	c, err = collapse.Collapse[int, core.Pair[int]](g)
	require.NoError(t, err)
	assert.Equal(t, 2, c.VertexCount())
	assert.Zero(t, c.EdgeCount())
}
