// SPDX-License-Identifier: MIT
// Package: core
//
// methods_clone.go - deep copies.

package core

// Clone returns a deep copy of the topology and flags. Metadata maps are
// copied one level deep; values inside them are shared.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		weighted:  g.weighted,
		vertices:  make(map[string]*Vertex, len(g.vertices)),
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, v := range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: md}
	}
	for u, nbrs := range g.adjacency {
		m := make(map[string]float64, len(nbrs))
		for v, w := range nbrs {
			m[v] = w
		}
		c.adjacency[u] = m
	}

	return c
}

// CloneEmpty returns a graph with the same vertices and flags but no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.weighted = g.weighted
	for id := range g.vertices {
		c.addVertexLocked(id)
	}

	return c
}
