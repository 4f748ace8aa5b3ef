// SPDX-License-Identifier: MIT
// Package: core
//
// methods_vertices.go - vertex lifecycle, degree and metadata.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts id. Re-adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]float64)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// RemoveVertex deletes id and every edge touching it.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%s): %w", id, ErrVertexNotFound)
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// SetMetadata stores value under key on vertex id.
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetMetadata(%s): %w", id, ErrVertexNotFound)
	}
	v.Metadata[key] = value

	return nil
}

// Metadata returns a shallow copy of the metadata of vertex id.
func (g *Graph) Metadata(id string) (map[string]interface{}, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Metadata(%s): %w", id, ErrVertexNotFound)
	}
	out := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		out[k] = val
	}

	return out, nil
}
