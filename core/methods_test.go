// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slink/core"
)

// newSquare builds the 4-cycle 0-1-2-3-0 with weights 1..4.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(3, 0, 4))

	return g
}

func TestNewGraph_NegativeNodeCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeNodeCount)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasNode(0))
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b int
		w    float64
		want error
	}{
		{"negative endpoint", -1, 1, 1, core.ErrNodeOutOfRange},
		{"endpoint past range", 0, 3, 1, core.ErrNodeOutOfRange},
		{"self loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"negative weight", 0, 1, -0.5, core.ErrBadWeight},
		{"NaN weight", 0, 1, math.NaN(), core.ErrBadWeight},
		{"infinite weight", 0, 1, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.a, tc.b, tc.w), tc.want)
		})
	}
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges must not be stored")

	assert.NoError(t, g.AddEdge(0, 1, 0), "zero weight is legal")
}

func TestEdges_InsertionOrderAndCopy(t *testing.T) {
	g := newSquare(t)

	edges := g.Edges()
	assert.Equal(t, []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 2, 2),
		core.NewEdge(2, 3, 3),
		core.NewEdge(3, 0, 4),
	}, edges)

	edges[0].Weight = 100
	assert.Equal(t, 1.0, g.Edges()[0].Weight, "Edges must return an independent copy")
	assert.Equal(t, 10.0, core.TotalWeight(g.Edges()))
}

func TestNeighbors(t *testing.T) {
	g := newSquare(t)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge(0, 1, 1), core.NewEdge(3, 0, 4)}, nbrs)

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.NeighborIDs(-1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestNeighborIDs_ParallelEdgesDedup(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 1))

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestAdjacency_RebuiltAfterAddEdge(t *testing.T) {
	g := newSquare(t)
	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	require.NoError(t, g.AddEdge(0, 2, 9))
	ids, err = g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{A: 0, B: 1, Weight: 1}, {A: 1, B: 2, Weight: 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = core.FromEdges(2, []core.Edge{{A: 0, B: 5, Weight: 1}})
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestEdge_Other(t *testing.T) {
	e := core.NewEdge(2, 7, 0.5)
	assert.Equal(t, 7, e.Other(2))
	assert.Equal(t, 2, e.Other(7))
	assert.Equal(t, -1, e.Other(3))
	assert.Equal(t, "(2,7,0.5)", e.String())
}

// TestConcurrentReaders runs neighborhood queries from many goroutines while
// the adjacency index is built lazily; run with -race.
func TestConcurrentReaders(t *testing.T) {
	g := newSquare(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := g.NeighborIDs(id % 4)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestWithEdgeCapacity_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithEdgeCapacity(-1) })
}
