package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(VertexA))

	require.NoError(s.g.AddVertex(VertexA))
	require.NoError(s.g.AddVertex(VertexA))
	require.True(s.g.HasVertex(VertexA))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeUndirected() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(VertexA, VertexB, 0))
	require.True(s.g.HasVertex(VertexA), "endpoints are created")
	require.True(s.g.HasEdge(VertexA, VertexB))
	require.True(s.g.HasEdge(VertexB, VertexA), "mirror edge")
	require.Equal(1, s.g.EdgeCount())

	nbrs, err := s.g.NeighborIDs(VertexB)
	require.NoError(err)
	require.Equal([]string{VertexA}, nbrs)
}

func (s *GraphSuite) TestAddEdgeRejects() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge("", VertexB, 0), core.ErrEmptyVertexID)
	require.ErrorIs(s.g.AddEdge(VertexA, VertexA, 0), core.ErrLoopNotAllowed)
	require.ErrorIs(s.g.AddEdge(VertexA, VertexB, 2), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge(VertexA, VertexB, math.NaN()), core.ErrBadWeight)

	require.NoError(s.g.AddEdge(VertexA, VertexB, 0))
	require.ErrorIs(s.g.AddEdge(VertexB, VertexA, 0), core.ErrMultiEdgeNotAllowed)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(VertexA, VertexB, 0))

	require.ErrorIs(s.g.RemoveEdge(VertexA, VertexC), core.ErrVertexNotFound)
	require.NoError(s.g.AddVertex(VertexC))
	require.ErrorIs(s.g.RemoveEdge(VertexA, VertexC), core.ErrEdgeNotFound)

	require.NoError(s.g.RemoveEdge(VertexB, VertexA))
	require.False(s.g.HasEdge(VertexA, VertexB))
	require.Equal(0, s.g.EdgeCount())
	require.Equal(3, s.g.VertexCount(), "vertices survive edge removal")
}

func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(VertexA, VertexB, 0))
	require.NoError(s.g.AddEdge(VertexA, VertexC, 0))
	require.NoError(s.g.AddEdge(VertexB, VertexC, 0))

	require.NoError(s.g.RemoveVertex(VertexA))
	require.False(s.g.HasVertex(VertexA))
	require.False(s.g.HasEdge(VertexB, VertexA))
	require.Equal(1, s.g.EdgeCount())

	require.ErrorIs(s.g.RemoveVertex(VertexA), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestDegreeAndSortedGetters() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(VertexC, VertexA, 0))
	require.NoError(s.g.AddEdge(VertexC, VertexB, 0))
	require.NoError(s.g.AddEdge(VertexD, VertexA, 0))

	deg, err := s.g.Degree(VertexC)
	require.NoError(err)
	require.Equal(2, deg)
	_, err = s.g.Degree("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	require.Equal([]string{VertexA, VertexB, VertexC, VertexD}, s.g.Vertices())

	nbrs, err := s.g.NeighborIDs(VertexA)
	require.NoError(err)
	require.Equal([]string{VertexC, VertexD}, nbrs)
	_, err = s.g.NeighborIDs("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	require.Equal([]core.Edge{
		{From: VertexA, To: VertexC},
		{From: VertexA, To: VertexD},
		{From: VertexB, To: VertexC},
	}, s.g.Edges())
}

func (s *GraphSuite) TestMetadata() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex(VertexA))

	require.NoError(s.g.SetMetadata(VertexA, "population", int64(50)))
	md, err := s.g.Metadata(VertexA)
	require.NoError(err)
	require.Equal(int64(50), md["population"])

	md["population"] = int64(0)
	again, _ := s.g.Metadata(VertexA)
	require.Equal(int64(50), again["population"], "Metadata returns a copy")

	require.ErrorIs(s.g.SetMetadata("Z", "k", 1), core.ErrVertexNotFound)
	_, err = s.g.Metadata("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func TestWeightedGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.True(t, g.Weighted())

	require.NoError(t, g.AddEdge(VertexA, VertexB, 2.5))
	w, err := g.Weight(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	_, err = g.Weight(VertexA, VertexC)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexC, math.Inf(1)), core.ErrBadWeight)

	assert.False(t, core.NewGraph().Weighted())
}

func TestClone(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge(VertexA, VertexB, 1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, 2))
	require.NoError(t, g.SetMetadata(VertexA, "biome", "forest"))

	c := g.Clone()
	require.NoError(t, c.RemoveEdge(VertexA, VertexB))
	require.NoError(t, c.SetMetadata(VertexA, "biome", "desert"))

	assert.True(t, g.HasEdge(VertexA, VertexB), "original untouched")
	md, _ := g.Metadata(VertexA)
	assert.Equal(t, "forest", md["biome"])
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, c.EdgeCount())
	assert.True(t, c.Weighted())

	e := g.CloneEmpty()
	assert.Equal(t, g.Vertices(), e.Vertices())
	assert.Equal(t, 0, e.EdgeCount())
	assert.True(t, e.Weighted())
}
