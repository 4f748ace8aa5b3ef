package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/bfs"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/builder"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

func seeded(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(seed)}
}

func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		out[id] = d
	}
	return out
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRingLattice(t *testing.T) {
	tests := []struct {
		name      string
		n, k      int
		wantEdges int
		wantDeg   int
	}{
		{"k4", 10, 4, 20, 4},
		{"odd k rounds down", 10, 5, 20, 4},
		{"k2 cycle", 6, 2, 6, 2},
		{"k0 isolated", 5, 0, 0, 0},
		{"k==n complete", 5, 5, 10, 4},
		{"single vertex", 1, 1, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, builder.RingLattice(tc.n, tc.k))
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.VertexCount())
			assert.Equal(t, tc.wantEdges, g.EdgeCount())
			for id, d := range degrees(t, g) {
				assert.Equal(t, tc.wantDeg, d, "vertex %s", id)
			}
		})
	}

	g, err := builder.BuildGraph(nil, nil, builder.RingLattice(6, 4))
	require.NoError(t, err)
	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5"}, nbrs)
}

func TestLatticeValidation(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"ring n=0", builder.RingLattice(0, 0), builder.ErrTooFewVertices},
		{"ring k>n", builder.RingLattice(4, 5), builder.ErrBadSize},
		{"ring k<0", builder.RingLattice(4, -1), builder.ErrBadSize},
		{"ws p<0", builder.WattsStrogatz(10, 4, -0.1), builder.ErrInvalidProbability},
		{"ws p>1", builder.WattsStrogatz(10, 4, 1.5), builder.ErrInvalidProbability},
		{"ws n=0", builder.WattsStrogatz(0, 0, 0.5), builder.ErrTooFewVertices},
		{"cws tries=0", builder.ConnectedWattsStrogatz(10, 4, 0.1, 0), builder.ErrBadSize},
		{"sparse n=0", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"sparse p>1", builder.RandomSparse(5, 2), builder.ErrInvalidProbability},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, seeded(1), tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNeedRandSource(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.WattsStrogatz(10, 4, 0.3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0.3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// p = 0 is the plain lattice and needs no RNG.
	g, err := builder.BuildGraph(nil, nil, builder.WattsStrogatz(10, 4, 0))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())

	// p = 1 in G(n,p) is the complete graph.
	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestWattsStrogatz_PreservesEdgeCount(t *testing.T) {
	for _, p := range []float64{0.1, 0.5, 1} {
		g, err := builder.BuildGraph(nil, seeded(7), builder.WattsStrogatz(50, 6, p))
		require.NoError(t, err)
		assert.Equal(t, 50, g.VertexCount())
		assert.Equal(t, 150, g.EdgeCount(), "p=%g", p)
		for _, e := range g.Edges() {
			assert.NotEqual(t, e.From, e.To)
		}
	}
}

func TestWattsStrogatz_RewiresSomething(t *testing.T) {
	lattice, err := builder.BuildGraph(nil, nil, builder.RingLattice(100, 4))
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, seeded(3), builder.WattsStrogatz(100, 4, 0.5))
	require.NoError(t, err)

	moved := 0
	for _, e := range lattice.Edges() {
		if !g.HasEdge(e.From, e.To) {
			moved++
		}
	}
	// Expected ~100 of 200 edges rewired.
	assert.Greater(t, moved, 50)
	assert.Less(t, moved, 150)
}

func TestWattsStrogatz_Deterministic(t *testing.T) {
	a, err := builder.BuildGraph(nil, seeded(11), builder.WattsStrogatz(40, 4, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, seeded(11), builder.WattsStrogatz(40, 4, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestWattsStrogatz_DenseSkipsSaturatedVertices(t *testing.T) {
	// k = n-1 leaves nowhere to rewire to; the graph stays complete.
	g, err := builder.BuildGraph(nil, seeded(5), builder.WattsStrogatz(5, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestConnectedWattsStrogatz(t *testing.T) {
	g, err := builder.BuildGraph(nil, seeded(42),
		builder.ConnectedWattsStrogatz(100, 5, 0.5, builder.DefaultConnectTries))
	require.NoError(t, err)
	assert.Equal(t, 100, g.VertexCount())
	assert.Equal(t, 200, g.EdgeCount())

	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectedWattsStrogatz_Fails(t *testing.T) {
	// k < 2 has no edges at all, so 3 vertices can never be connected.
	_, err := builder.BuildGraph(nil, seeded(1), builder.ConnectedWattsStrogatz(3, 1, 0.5, 4))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightedWorld(t *testing.T) {
	fn, err := builder.UniformWeightFn(2, 3)
	require.NoError(t, err)
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(fn)},
		builder.ConnectedWattsStrogatz(30, 4, 0.2, 10),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.Less(t, e.Weight, 3.0)
	}
}

func TestIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PlaceIDFn)},
		builder.RingLattice(3, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"place-000", "place-001", "place-002"}, g.Vertices())
}

func TestErrorContext(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RingLattice(0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BuildGraph: RingLattice:")
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))
}
