package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/dsu"
	"github.com/katalvlaran/slink/prim_kruskal"
)

// fourNodeEdges is the reference scenario: MST = (0,1,1) (1,2,2) (2,3,3).
func fourNodeEdges() []core.Edge {
	return []core.Edge{
		{A: 0, B: 1, Weight: 1},
		{A: 1, B: 2, Weight: 2},
		{A: 2, B: 3, Weight: 3},
		{A: 0, B: 3, Weight: 10},
		{A: 0, B: 2, Weight: 5},
		{A: 1, B: 3, Weight: 6},
	}
}

// randomComplete returns the complete graph on n nodes with random weights
// drawn from a seeded source.
func randomComplete(n int, seed int64) []core.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{A: i, B: j, Weight: float64(r.Intn(20))})
		}
	}

	return edges
}

// bruteForceMST tries every (n-1)-subset of edges and returns the smallest
// total weight of a spanning tree.
func bruteForceMST(t *testing.T, edges []core.Edge, n int) float64 {
	t.Helper()
	best := math.Inf(1)
	pick := make([]int, 0, n-1)

	var rec func(start int)
	rec = func(start int) {
		if len(pick) == n-1 {
			set, err := dsu.New(n)
			require.NoError(t, err)
			total := 0.0
			for _, idx := range pick {
				ok, err := set.Union(edges[idx].A, edges[idx].B)
				require.NoError(t, err)
				if !ok {
					return
				}
				total += edges[idx].Weight
			}
			if total < best {
				best = total
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best
}

// assertAcyclicSpanning checks that mst has n-1 edges and never closes a cycle.
func assertAcyclicSpanning(t *testing.T, mst []core.Edge, n int) {
	t.Helper()
	require.Len(t, mst, n-1)
	set, err := dsu.New(n)
	require.NoError(t, err)
	for _, e := range mst {
		ok, err := set.Union(e.A, e.B)
		require.NoError(t, err)
		require.True(t, ok, "edge %v closes a cycle", e)
	}
	assert.Equal(t, 1, set.Count())
}

func TestKruskal_ReferenceScenario(t *testing.T) {
	mst, err := prim_kruskal.Kruskal(fourNodeEdges(), 4)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{A: 0, B: 1, Weight: 1},
		{A: 1, B: 2, Weight: 2},
		{A: 2, B: 3, Weight: 3},
	}, mst)
}

func TestKruskal_DoesNotMutateInput(t *testing.T) {
	in := fourNodeEdges()
	in[0], in[3] = in[3], in[0]
	snapshot := append([]core.Edge(nil), in...)

	_, err := prim_kruskal.Kruskal(in, 4)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

// TestKruskal_MatchesBruteForce compares against exhaustive search on small
// complete graphs with many tied weights.
func TestKruskal_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		edges := randomComplete(5, seed)
		mst, err := prim_kruskal.Kruskal(edges, 5)
		require.NoError(t, err)

		assertAcyclicSpanning(t, mst, 5)
		assert.True(t, prim_kruskal.IsSortedByWeight(mst))
		assert.Equal(t, bruteForceMST(t, edges, 5), core.TotalWeight(mst), "seed %d", seed)
	}
}

// TestKruskal_StableTieBreak: with all weights equal the first n-1 edges that
// do not close a cycle, in input order, are chosen.
func TestKruskal_StableTieBreak(t *testing.T) {
	edges := []core.Edge{
		{A: 2, B: 3, Weight: 1},
		{A: 0, B: 1, Weight: 1},
		{A: 1, B: 0, Weight: 1},
		{A: 0, B: 3, Weight: 1},
		{A: 1, B: 2, Weight: 1},
	}
	mst, err := prim_kruskal.Kruskal(edges, 4)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edges[0], edges[1], edges[3]}, mst)
}

func TestKruskal_EarlyStopIgnoresTail(t *testing.T) {
	// The trailing edge is out of range, but the tree is complete before it
	// is reached, so it is never inspected.
	edges := []core.Edge{{A: 0, B: 1, Weight: 1}, {A: 0, B: 7, Weight: 2}}
	mst, err := prim_kruskal.Kruskal(edges, 2)
	require.NoError(t, err)
	assert.Len(t, mst, 1)
}

func TestKruskal_InsufficientEdges(t *testing.T) {
	edges := []core.Edge{{A: 0, B: 1, Weight: 1}, {A: 2, B: 3, Weight: 2}}
	mst, err := prim_kruskal.Kruskal(edges, 4)
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientEdges)
	assert.Equal(t, edges, mst, "the spanning forest found so far is returned")

	mst, err = prim_kruskal.Kruskal(nil, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientEdges)
	assert.Empty(t, mst)
}

func TestKruskal_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.Kruskal([]core.Edge{{A: 0, B: 5, Weight: 1}}, 3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)

	_, err = prim_kruskal.Kruskal([]core.Edge{{A: 0, B: 1, Weight: math.NaN()}}, 2)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = prim_kruskal.Kruskal([]core.Edge{{A: 0, B: 1, Weight: -1}}, 2)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestKruskal_TrivialGraphs(t *testing.T) {
	for _, n := range []int{0, 1} {
		mst, err := prim_kruskal.Kruskal(nil, n)
		require.NoError(t, err)
		assert.Empty(t, mst)
		assert.NotNil(t, mst)
	}
}

func TestKruskal_SkipsSelfLoops(t *testing.T) {
	edges := []core.Edge{{A: 1, B: 1, Weight: 0}, {A: 0, B: 1, Weight: 4}}
	mst, err := prim_kruskal.Kruskal(edges, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{A: 0, B: 1, Weight: 4}}, mst)
}

func TestPrim_AgreesWithKruskal(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		edges := randomComplete(9, seed)
		g, err := core.FromEdges(9, edges)
		require.NoError(t, err)

		kr, err := prim_kruskal.Kruskal(edges, 9)
		require.NoError(t, err)
		pr, err := prim_kruskal.Prim(g, 4)
		require.NoError(t, err)

		assertAcyclicSpanning(t, pr, 9)
		assert.InDelta(t, core.TotalWeight(kr), core.TotalWeight(pr), 1e-9, "seed %d", seed)
	}
}

func TestPrim_Errors(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	g, err = core.FromEdges(3, []core.Edge{{A: 0, B: 1, Weight: 1}})
	require.NoError(t, err)
	_, err = prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	_, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientEdges)

	single, err := core.NewGraph(1)
	require.NoError(t, err)
	mst, err := prim_kruskal.Prim(single, 0)
	require.NoError(t, err)
	assert.Empty(t, mst)
}

func TestPrimDense_AgreesWithKruskal(t *testing.T) {
	const n = 8
	for seed := int64(1); seed <= 10; seed++ {
		edges := randomComplete(n, seed)
		m := mat.NewSymDense(n, nil)
		for _, e := range edges {
			m.SetSym(e.A, e.B, e.Weight)
		}

		kr, err := prim_kruskal.Kruskal(edges, n)
		require.NoError(t, err)
		pd, err := prim_kruskal.PrimDense(m)
		require.NoError(t, err)

		assertAcyclicSpanning(t, pd, n)
		assert.InDelta(t, core.TotalWeight(kr), core.TotalWeight(pd), 1e-9, "seed %d", seed)
	}
}

func TestPrimDense_Disconnected(t *testing.T) {
	m := mat.NewSymDense(3, []float64{
		0, 1, math.Inf(1),
		1, 0, math.Inf(1),
		math.Inf(1), math.Inf(1), 0,
	})
	_, err := prim_kruskal.PrimDense(m)
	assert.ErrorIs(t, err, prim_kruskal.ErrInsufficientEdges)

	_, err = prim_kruskal.PrimDense(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	bad := mat.NewSymDense(2, []float64{0, -1, -1, 0})
	_, err = prim_kruskal.PrimDense(bad)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestCompute(t *testing.T) {
	g, err := core.FromEdges(4, fourNodeEdges())
	require.NoError(t, err)

	want := []core.Edge{{A: 0, B: 1, Weight: 1}, {A: 1, B: 2, Weight: 2}, {A: 2, B: 3, Weight: 3}}

	kr, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, kr)

	pr, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot(3),
	))
	require.NoError(t, err)
	assert.True(t, prim_kruskal.IsSortedByWeight(pr))
	assert.Equal(t, 6.0, core.TotalWeight(pr))

	_, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = prim_kruskal.Compute(nil, prim_kruskal.DefaultOptions())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}
