// SPDX-License-Identifier: MIT
// Package: core
//
// methods_edges.go - edge lifecycle and adjacency queries.
//
// Validation order in AddEdge (first failure wins):
//   ErrEmptyVertexID → ErrLoopNotAllowed → ErrBadWeight → ErrMultiEdgeNotAllowed.
// Missing endpoints are created, as in AddVertex.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge links from and to with weight w.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%s,%s,w=%v): %w", from, to, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && w != 0 {
		return fmt.Errorf("AddEdge(%s,%s,w=%v): %w", from, to, w, ErrBadWeight)
	}
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from][to] = w
	g.adjacency[to][from] = w
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge between from and to.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("RemoveEdge(%s,%s): %w", from, to, ErrVertexNotFound)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("RemoveEdge(%s,%s): %w", from, to, ErrVertexNotFound)
	}
	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%s,%s): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether from and to are adjacent.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]
	return ok
}

// Weight returns the weight of the edge between from and to.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrEdgeNotFound)
	}

	return w, nil
}

// NeighborIDs returns the neighbours of id in ascending order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%s): %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns every edge once, From < To, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
