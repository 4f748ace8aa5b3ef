// SPDX-License-Identifier: MIT
// Package: core
//
// types.go - Vertex, Edge, Graph, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero or non-finite weight the graph cannot store.
	ErrBadWeight = errors.New("core: bad weight for graph")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a place in the world.
type Vertex struct {
	// ID uniquely identifies the vertex.
	ID string

	// Metadata carries per-place simulation state.
	Metadata map[string]interface{}
}

// Edge is an undirected link. Edges() reports From < To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an undirected simple graph guarded by one RWMutex.
type Graph struct {
	mu sync.RWMutex

	weighted bool

	vertices map[string]*Vertex
	// adjacency[u][v] = weight, mirrored for v→u.
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph returns an empty unweighted graph with opts applied.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}
