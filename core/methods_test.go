package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// newTriangle builds A–B(5), B–C(3), A–C(10).
func newTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(VertexA, VertexB, 5)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexC, 10)
	require.NoError(t, err)

	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexA))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
	i, ok := g.Index(VertexA)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_InvalidReferenceLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	_, err := g.AddEdge(VertexA, VertexB, 1)
	require.ErrorIs(t, err, core.ErrInvalidReference)
	_, err = g.AddEdge(VertexB, VertexA, 1)
	require.ErrorIs(t, err, core.ErrInvalidReference)

	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.HalfEdges())
	assert.False(t, g.HasVertex(VertexB), "AddEdge must not create vertices")
}

func TestAddEdge_BadWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := g.AddEdge(VertexA, VertexB, w)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	}
	_, err := g.AddEdge("", VertexB, 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := newTriangle(t)

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexD))

	nbA, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, nbA, 2)
	assert.Equal(t, core.HalfEdge{EdgeID: "e1", From: VertexA, To: VertexB, Weight: 5}, nbA[0])
	assert.Equal(t, core.HalfEdge{EdgeID: "e3", From: VertexA, To: VertexC, Weight: 10}, nbA[1])

	nbB, err := g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Equal(t, core.HalfEdge{EdgeID: "e1", From: VertexB, To: VertexA, Weight: 5}, nbB[0])
}

func TestHalfEdges_TwoPerEdgeInInsertionOrder(t *testing.T) {
	g := newTriangle(t)

	hs := g.HalfEdges()
	require.Len(t, hs, 2*g.EdgeCount())

	got := make([][2]string, 0, len(hs))
	for _, h := range hs {
		got = append(got, [2]string{h.From, h.To})
	}
	want := [][2]string{
		{VertexA, VertexB}, {VertexA, VertexC},
		{VertexB, VertexA}, {VertexB, VertexC},
		{VertexC, VertexB}, {VertexC, VertexA},
	}
	assert.Equal(t, want, got)
}

func TestAddEdge_MultiEdgesKeptByDefault(t *testing.T) {
	g := newTriangle(t)
	_, err := g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)
}

func TestAddEdge_WithoutMultiEdges(t *testing.T) {
	g := newTriangle(t, core.WithoutMultiEdges())
	assert.False(t, g.Multigraph())

	_, err := g.AddEdge(VertexB, VertexA, 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_Loops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	_, err := g.AddEdge(VertexA, VertexA, 2)
	require.NoError(t, err)
	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 2, deg, "self-loop yields two half-edges")

	strict := core.NewGraph(core.WithoutLoops())
	require.NoError(t, strict.AddVertex(VertexA))
	_, err = strict.AddEdge(VertexA, VertexA, 2)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, strict.Looped())
}

func TestNeighbors_Errors(t *testing.T) {
	g := newTriangle(t)
	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors(VertexD)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(VertexD)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := newTriangle(t)
	nb, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	nb[0].Weight = 999

	again, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 5.0, again[0].Weight)
}

func TestFreeze(t *testing.T) {
	g := newTriangle(t)
	g.Freeze()
	g.Freeze()

	assert.True(t, g.Frozen())
	assert.ErrorIs(t, g.AddVertex(VertexD), core.ErrFrozen)
	_, err := g.AddEdge(VertexA, VertexB, 1)
	assert.ErrorIs(t, err, core.ErrFrozen)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestClone_IndependentAndUnfrozen(t *testing.T) {
	g := newTriangle(t)
	g.Freeze()

	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.HalfEdges(), c.HalfEdges())

	require.NoError(t, c.AddVertex(VertexD))
	id, err := c.AddEdge(VertexC, VertexD, 1)
	require.NoError(t, err)
	assert.Equal(t, "e4", id, "clone continues the edge ID sequence")
	assert.False(t, g.HasVertex(VertexD))
}

func TestStats(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddVertex(VertexD))

	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 6, s.HalfEdgeCount)
	assert.Equal(t, 1, s.Isolated)
	assert.True(t, s.AllowsMulti)
	assert.True(t, s.AllowsLoops)
	assert.False(t, s.Frozen)
}
