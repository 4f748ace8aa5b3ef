// SPDX-License-Identifier: MIT
// Package: bfs
//
// connectivity.go - connectivity and distance diagnostics for the world graph.

package bfs

import (
	"fmt"
	"sort"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
)

// Connected reports whether every vertex is reachable from every other.
// The empty graph and a single vertex are connected.
// Complexity: O(V + E).
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) <= 1 {
		return true, nil
	}
	res, err := BFS(g, ids[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(ids), nil
}

// Components returns the connected components. Each component is sorted and
// components are ordered by their first (smallest) ID.
// Complexity: O(V + E) plus sorting.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool)
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

// Eccentricity returns the greatest hop distance from id to any vertex.
// Returns ErrDisconnected if some vertex is unreachable.
func Eccentricity(g *core.Graph, id string) (int, error) {
	res, err := BFS(g, id)
	if err != nil {
		return 0, err
	}
	if len(res.Order) != g.VertexCount() {
		return 0, fmt.Errorf("Eccentricity(%s): %w", id, ErrDisconnected)
	}
	ecc := 0
	for _, d := range res.Depth {
		if d > ecc {
			ecc = d
		}
	}

	return ecc, nil
}

// AveragePathLength returns the mean hop distance over all ordered pairs of
// distinct vertices. Graphs with fewer than two vertices return 0.
// Returns ErrDisconnected if some pair is unreachable.
// Complexity: O(V·(V + E)).
func AveragePathLength(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	if n < 2 {
		return 0, nil
	}
	total := 0
	for _, id := range ids {
		res, err := BFS(g, id)
		if err != nil {
			return 0, err
		}
		if len(res.Order) != n {
			return 0, fmt.Errorf("AveragePathLength: %w", ErrDisconnected)
		}
		for _, d := range res.Depth {
			total += d
		}
	}

	return float64(total) / float64(n*(n-1)), nil
}
